package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yobeidat/obeidat-motors-backend/api/responses"
	"github.com/yobeidat/obeidat-motors-backend/api/validators"
	carsvc "github.com/yobeidat/obeidat-motors-backend/internal/cars"
	pkgerrors "github.com/yobeidat/obeidat-motors-backend/pkg/errors"
	"github.com/yobeidat/obeidat-motors-backend/pkg/logger"
)

// ListCars handles GET /api/cars. When the legacy ?id= query parameter is
// present the handler serves a single record instead of the full list.
func ListCars(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("id")); raw != "" {
			serveCarByID(w, r, svc, logg, raw)
			return
		}

		records, err := svc.ListCars(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, records)
	}
}

// GetCar handles GET /api/cars/{carId}.
func GetCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}
		serveCarByID(w, r, svc, logg, chi.URLParam(r, "carId"))
	}
}

func serveCarByID(w http.ResponseWriter, r *http.Request, svc carsvc.Service, logg *logger.Logger, raw string) {
	id, err := parseCarID(raw)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}

	record, err := svc.GetCar(r.Context(), id)
	if err != nil {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	responses.WriteSuccess(w, record)
}

// CreateCar handles POST /api/cars.
func CreateCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		var payload createCarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.CreateCar(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// UpdateCar handles PUT /api/cars/{carId} with a partial patch body.
func UpdateCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		id, err := parseCarID(chi.URLParam(r, "carId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCarRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.UpdateCar(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// DeleteCar handles DELETE /api/cars/{carId}.
func DeleteCar(svc carsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "car service unavailable"))
			return
		}

		id, err := parseCarID(chi.URLParam(r, "carId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteCar(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// parseCarID treats a malformed id the same as an absent record so the wire
// contract stays a plain 404.
func parseCarID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "Car not found")
	}
	return id, nil
}

type createCarRequest struct {
	Title       string   `json:"title" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Currency    string   `json:"currency,omitempty"`
	Mileage     *int     `json:"mileage" validate:"required,min=0"`
	Year        *int     `json:"year" validate:"required,min=1900,max=9999"`
	Make        string   `json:"make" validate:"required"`
	Gearbox     string   `json:"gearbox" validate:"required"`
	Engine      string   `json:"engine" validate:"required"`
	Drive       string   `json:"drive" validate:"required"`
	Fuel        string   `json:"fuel" validate:"required"`
	Color       string   `json:"color" validate:"required"`
	Origin      string   `json:"origin" validate:"required"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description" validate:"required"`
}

func (p createCarRequest) toCreateInput() (carsvc.CreateCarInput, error) {
	price, err := parsePrice(p.Price)
	if err != nil {
		return carsvc.CreateCarInput{}, err
	}

	return carsvc.CreateCarInput{
		Title:       p.Title,
		Price:       price,
		Currency:    p.Currency,
		Mileage:     *p.Mileage,
		Year:        *p.Year,
		Make:        p.Make,
		Gearbox:     p.Gearbox,
		Engine:      p.Engine,
		Drive:       p.Drive,
		Fuel:        p.Fuel,
		Color:       p.Color,
		Origin:      p.Origin,
		Images:      p.Images,
		Description: p.Description,
	}, nil
}

type updateCarRequest struct {
	Title       *string   `json:"title,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Currency    *string   `json:"currency,omitempty"`
	Mileage     *int      `json:"mileage,omitempty" validate:"omitempty,min=0"`
	Year        *int      `json:"year,omitempty" validate:"omitempty,min=1900,max=9999"`
	Make        *string   `json:"make,omitempty"`
	Gearbox     *string   `json:"gearbox,omitempty"`
	Engine      *string   `json:"engine,omitempty"`
	Drive       *string   `json:"drive,omitempty"`
	Fuel        *string   `json:"fuel,omitempty"`
	Color       *string   `json:"color,omitempty"`
	Origin      *string   `json:"origin,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Description *string   `json:"description,omitempty"`
}

func (p updateCarRequest) toUpdateInput() (carsvc.UpdateCarInput, error) {
	input := carsvc.UpdateCarInput{
		Title:       p.Title,
		Currency:    p.Currency,
		Mileage:     p.Mileage,
		Year:        p.Year,
		Make:        p.Make,
		Gearbox:     p.Gearbox,
		Engine:      p.Engine,
		Drive:       p.Drive,
		Fuel:        p.Fuel,
		Color:       p.Color,
		Origin:      p.Origin,
		Images:      p.Images,
		Description: p.Description,
	}

	if p.Price != nil {
		price, err := parsePrice(*p.Price)
		if err != nil {
			return carsvc.UpdateCarInput{}, err
		}
		input.Price = &price
	}

	return input, nil
}

// parsePrice validates the wire price string: a non-negative decimal with at
// most two fractional digits, matching the numeric(10,2) column.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"price": "must be a decimal number"})
	}
	if price.IsNegative() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"price": "must not be negative"})
	}
	if price.Exponent() < -2 {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"price": "must have at most two decimal places"})
	}
	return price, nil
}
