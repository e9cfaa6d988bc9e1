package cars

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yobeidat/obeidat-motors-backend/internal/repo"
	"github.com/yobeidat/obeidat-motors-backend/pkg/db/models"
)

// CarRepository defines persistence operations for vehicle listings.
type CarRepository interface {
	Create(context.Context, *models.Car) (*models.Car, error)
	Update(context.Context, *models.Car) (*models.Car, error)
	Delete(context.Context, uuid.UUID) (int64, error)
	FindByID(context.Context, uuid.UUID) (*models.Car, error)
	List(context.Context) ([]models.Car, error)
}

// Repository wires car persistence to the shared GORM connection.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new car row; the database generates the id.
func (r *Repository) Create(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := r.DB(ctx).Create(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// Update saves the full car row.
func (r *Repository) Update(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := r.DB(ctx).Save(car).Error; err != nil {
		return nil, err
	}
	return car, nil
}

// Delete removes a car by ID and reports how many rows were affected.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.DB(ctx).Where("id = ?", id).Delete(&models.Car{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindByID loads a single car.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.DB(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// List returns the full inventory ordered by title ascending.
func (r *Repository) List(ctx context.Context) ([]models.Car, error) {
	var rows []models.Car
	err := r.DB(ctx).
		Order("title ASC").
		Find(&rows).
		Error
	return rows, err
}
