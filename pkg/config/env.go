package config

// EnvPrefix is passed to envconfig; individual fields carry fully qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	EnvDBDSN  = "OBMOTORS_DB_DSN"
	EnvDBHost = "OBMOTORS_DB_HOST"
	EnvDBUser = "OBMOTORS_DB_USER"
	EnvDBName = "OBMOTORS_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
