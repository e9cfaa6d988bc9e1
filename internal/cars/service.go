package cars

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yobeidat/obeidat-motors-backend/pkg/db/models"
	"github.com/yobeidat/obeidat-motors-backend/pkg/enums"
	pkgerrors "github.com/yobeidat/obeidat-motors-backend/pkg/errors"
)

var defaultCurrency = enums.CurrencyJOD.String()

// Service exposes inventory management operations for the storefront API.
type Service interface {
	ListCars(ctx context.Context) ([]CarDTO, error)
	GetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error)
	CreateCar(ctx context.Context, input CreateCarInput) (*CarDTO, error)
	UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) (*CarDTO, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
}

// CreateCarInput holds the validated payload to create a listing.
type CreateCarInput struct {
	Title       string
	Price       decimal.Decimal
	Currency    string
	Mileage     int
	Year        int
	Make        string
	Gearbox     string
	Engine      string
	Drive       string
	Fuel        string
	Color       string
	Origin      string
	Images      []string
	Description string
}

// UpdateCarInput holds optional mutation values; nil fields keep the stored value.
type UpdateCarInput struct {
	Title       *string
	Price       *decimal.Decimal
	Currency    *string
	Mileage     *int
	Year        *int
	Make        *string
	Gearbox     *string
	Engine      *string
	Drive       *string
	Fuel        *string
	Color       *string
	Origin      *string
	Images      *[]string
	Description *string
}

// IsEmpty reports whether the patch carries no fields at all.
func (in UpdateCarInput) IsEmpty() bool {
	return in.Title == nil &&
		in.Price == nil &&
		in.Currency == nil &&
		in.Mileage == nil &&
		in.Year == nil &&
		in.Make == nil &&
		in.Gearbox == nil &&
		in.Engine == nil &&
		in.Drive == nil &&
		in.Fuel == nil &&
		in.Color == nil &&
		in.Origin == nil &&
		in.Images == nil &&
		in.Description == nil
}

// service implements the car service.
type service struct {
	repo  CarRepository
	cache *Cache
}

// NewService constructs a car service instance. The cache may be nil.
func NewService(repo CarRepository, cache *Cache) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("car repository required")
	}
	return &service{repo: repo, cache: cache}, nil
}

// ListCars returns the full inventory ordered by title.
func (s *service) ListCars(ctx context.Context) ([]CarDTO, error) {
	if dtos, ok := s.cache.GetList(ctx); ok {
		return dtos, nil
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list cars")
	}

	dtos := NewCarDTOs(rows)
	s.cache.SetList(ctx, dtos)
	return dtos, nil
}

// GetCar loads a single listing.
func (s *service) GetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error) {
	if dto, ok := s.cache.GetDetail(ctx, id.String()); ok {
		return dto, nil
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load car")
	}

	dto := NewCarDTO(car)
	s.cache.SetDetail(ctx, dto)
	return dto, nil
}

// CreateCar persists a new listing. Currency falls back to JOD and images
// default to an empty array so the column constraints hold.
func (s *service) CreateCar(ctx context.Context, input CreateCarInput) (*CarDTO, error) {
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	car := &models.Car{
		Title:       input.Title,
		Price:       input.Price,
		Currency:    currency,
		Mileage:     input.Mileage,
		Year:        input.Year,
		Make:        input.Make,
		Gearbox:     input.Gearbox,
		Engine:      input.Engine,
		Drive:       input.Drive,
		Fuel:        input.Fuel,
		Color:       input.Color,
		Origin:      input.Origin,
		Images:      images,
		Description: input.Description,
	}

	created, err := s.repo.Create(ctx, car)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert car")
	}

	s.cache.Invalidate(ctx, created.ID.String())
	return NewCarDTO(created), nil
}

// UpdateCar applies a partial patch on top of the stored row.
func (s *service) UpdateCar(ctx context.Context, id uuid.UUID, input UpdateCarInput) (*CarDTO, error) {
	if input.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "At least one field is required")
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load car")
	}

	applyUpdateToCar(car, input)

	updated, err := s.repo.Update(ctx, car)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update car")
	}

	s.cache.Invalidate(ctx, updated.ID.String())
	return NewCarDTO(updated), nil
}

// DeleteCar removes a listing. Deleting an id that is already gone is a
// NotFound, so a second delete of the same car fails.
func (s *service) DeleteCar(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete car")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Car not found")
	}

	s.cache.Invalidate(ctx, id.String())
	return nil
}

func applyUpdateToCar(car *models.Car, input UpdateCarInput) {
	if input.Title != nil {
		car.Title = *input.Title
	}
	if input.Price != nil {
		car.Price = *input.Price
	}
	if input.Currency != nil {
		car.Currency = *input.Currency
	}
	if input.Mileage != nil {
		car.Mileage = *input.Mileage
	}
	if input.Year != nil {
		car.Year = *input.Year
	}
	if input.Make != nil {
		car.Make = *input.Make
	}
	if input.Gearbox != nil {
		car.Gearbox = *input.Gearbox
	}
	if input.Engine != nil {
		car.Engine = *input.Engine
	}
	if input.Drive != nil {
		car.Drive = *input.Drive
	}
	if input.Fuel != nil {
		car.Fuel = *input.Fuel
	}
	if input.Color != nil {
		car.Color = *input.Color
	}
	if input.Origin != nil {
		car.Origin = *input.Origin
	}
	if input.Images != nil {
		car.Images = append([]string{}, (*input.Images)...)
	}
	if input.Description != nil {
		car.Description = *input.Description
	}
}
