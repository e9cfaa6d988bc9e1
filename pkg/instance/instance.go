package instance

import "os"

// GetID returns the identifier logged by each running process. Deployments
// set OBMOTORS_INSTANCE_ID; Heroku-style platforms expose DYNO instead.
func GetID() string {
	if id := os.Getenv("OBMOTORS_INSTANCE_ID"); id != "" {
		return id
	}
	if id := os.Getenv("DYNO"); id != "" {
		return id
	}
	return "local"
}
