package cars

import (
	"github.com/google/uuid"

	"github.com/yobeidat/obeidat-motors-backend/pkg/db/models"
)

// CarDTO is the transport shape for a vehicle listing. Price is serialized as
// a fixed two-decimal string matching the numeric column.
type CarDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Mileage     int       `json:"mileage"`
	Year        int       `json:"year"`
	Make        string    `json:"make"`
	Gearbox     string    `json:"gearbox"`
	Engine      string    `json:"engine"`
	Drive       string    `json:"drive"`
	Fuel        string    `json:"fuel"`
	Color       string    `json:"color"`
	Origin      string    `json:"origin"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
}

// NewCarDTO builds a DTO from the persisted model.
func NewCarDTO(car *models.Car) *CarDTO {
	if car == nil {
		return nil
	}
	return &CarDTO{
		ID:          car.ID,
		Title:       car.Title,
		Price:       car.Price.StringFixed(2),
		Currency:    car.Currency,
		Mileage:     car.Mileage,
		Year:        car.Year,
		Make:        car.Make,
		Gearbox:     car.Gearbox,
		Engine:      car.Engine,
		Drive:       car.Drive,
		Fuel:        car.Fuel,
		Color:       car.Color,
		Origin:      car.Origin,
		Images:      append([]string{}, car.Images...),
		Description: car.Description,
	}
}

// NewCarDTOs maps a slice of models preserving order.
func NewCarDTOs(records []models.Car) []CarDTO {
	dtos := make([]CarDTO, 0, len(records))
	for i := range records {
		dtos = append(dtos, *NewCarDTO(&records[i]))
	}
	return dtos
}
