package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Car represents one listed vehicle. Every column except currency is NOT NULL;
// the id is generated by the database on insert.
type Car struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string          `gorm:"column:title;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Currency    string          `gorm:"column:currency;not null;default:JOD"`
	Mileage     int             `gorm:"column:mileage;not null"`
	Year        int             `gorm:"column:year;not null"`
	Make        string          `gorm:"column:make;not null"`
	Gearbox     string          `gorm:"column:gearbox;not null"`
	Engine      string          `gorm:"column:engine;not null"`
	Drive       string          `gorm:"column:drive;not null"`
	Fuel        string          `gorm:"column:fuel;not null"`
	Color       string          `gorm:"column:color;not null"`
	Origin      string          `gorm:"column:origin;not null"`
	Images      pq.StringArray  `gorm:"column:images;type:text[];not null"`
	Description string          `gorm:"column:description;not null"`
}
