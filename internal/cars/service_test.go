package cars

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/db/models"
	pkgerrors "github.com/yobeidat/obeidat-motors-backend/pkg/errors"
)

func TestCreateCarAppliesDefaults(t *testing.T) {
	repo := newStubRepo()
	svc := mustNewService(t, repo, nil)

	dto, err := svc.CreateCar(context.Background(), CreateCarInput{
		Title:       "Toyota Corolla 2020",
		Price:       decimal.NewFromInt(14500),
		Mileage:     42000,
		Year:        2020,
		Make:        "Toyota",
		Gearbox:     "Automatic",
		Engine:      "1.6L",
		Drive:       "FWD",
		Fuel:        "Petrol",
		Color:       "White",
		Origin:      "GCC",
		Description: "Clean title",
	})
	if err != nil {
		t.Fatalf("CreateCar returned error: %v", err)
	}
	if dto.Currency != "JOD" {
		t.Fatalf("expected currency default JOD, got %q", dto.Currency)
	}
	if dto.Images == nil || len(dto.Images) != 0 {
		t.Fatalf("expected empty images array, got %v", dto.Images)
	}
	if dto.Price != "14500.00" {
		t.Fatalf("expected fixed two-decimal price, got %q", dto.Price)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
}

func TestCreateCarKeepsExplicitCurrency(t *testing.T) {
	repo := newStubRepo()
	svc := mustNewService(t, repo, nil)

	dto, err := svc.CreateCar(context.Background(), CreateCarInput{
		Title:    "BMW 320i",
		Price:    decimal.NewFromInt(30000),
		Currency: "USD",
		Images:   []string{"a.jpg"},
	})
	if err != nil {
		t.Fatalf("CreateCar returned error: %v", err)
	}
	if dto.Currency != "USD" {
		t.Fatalf("expected explicit currency kept, got %q", dto.Currency)
	}
	if len(dto.Images) != 1 || dto.Images[0] != "a.jpg" {
		t.Fatalf("expected images kept, got %v", dto.Images)
	}
}

func TestUpdateCarEmptyPatchIsValidationError(t *testing.T) {
	repo := newStubRepo()
	svc := mustNewService(t, repo, nil)

	_, err := svc.UpdateCar(context.Background(), uuid.New(), UpdateCarInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "At least one field is required" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestUpdateCarMergesPatchOverBase(t *testing.T) {
	repo := newStubRepo()
	base := repo.seed(models.Car{
		Title:       "Kia Sportage",
		Price:       decimal.NewFromInt(21000),
		Currency:    "JOD",
		Mileage:     60000,
		Year:        2019,
		Make:        "Kia",
		Fuel:        "Petrol",
		Description: "One owner",
	})
	svc := mustNewService(t, repo, nil)

	newPrice := decimal.NewFromFloat(19750.5)
	newMileage := 61000
	dto, err := svc.UpdateCar(context.Background(), base.ID, UpdateCarInput{
		Price:   &newPrice,
		Mileage: &newMileage,
	})
	if err != nil {
		t.Fatalf("UpdateCar returned error: %v", err)
	}
	if dto.Price != "19750.50" {
		t.Fatalf("expected updated price, got %q", dto.Price)
	}
	if dto.Mileage != 61000 {
		t.Fatalf("expected updated mileage, got %d", dto.Mileage)
	}
	// untouched fields keep their stored values
	if dto.Title != "Kia Sportage" || dto.Year != 2019 || dto.Description != "One owner" {
		t.Fatalf("expected untouched fields preserved, got %+v", dto)
	}
}

func TestUpdateCarMissingIsNotFound(t *testing.T) {
	repo := newStubRepo()
	svc := mustNewService(t, repo, nil)

	title := "anything"
	_, err := svc.UpdateCar(context.Background(), uuid.New(), UpdateCarInput{Title: &title})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "Car not found" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestGetCarMissingIsNotFound(t *testing.T) {
	repo := newStubRepo()
	svc := mustNewService(t, repo, nil)

	_, err := svc.GetCar(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteCarIsNotIdempotent(t *testing.T) {
	repo := newStubRepo()
	base := repo.seed(models.Car{Title: "Honda Civic"})
	svc := mustNewService(t, repo, nil)

	if err := svc.DeleteCar(context.Background(), base.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	err := svc.DeleteCar(context.Background(), base.ID)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected second delete to be not found, got %v", err)
	}
}

func TestListCarsUsesCacheAndMutationsInvalidate(t *testing.T) {
	repo := newStubRepo()
	repo.seed(models.Car{Title: "Audi A4", Price: decimal.NewFromInt(25000)})

	store := newFakeCacheStore()
	cache := NewCache(store, config.CacheConfig{ListTTL: time.Minute, DetailTTL: time.Minute}, nil)
	svc := mustNewService(t, repo, cache)
	ctx := context.Background()

	first, err := svc.ListCars(ctx)
	if err != nil {
		t.Fatalf("ListCars returned error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one repo list call, got %d", repo.listCalls)
	}

	// second read served from cache
	second, err := svc.ListCars(ctx)
	if err != nil {
		t.Fatalf("ListCars returned error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cached read, repo calls %d", repo.listCalls)
	}
	if len(first) != len(second) {
		t.Fatalf("cache returned different list sizes %d vs %d", len(first), len(second))
	}

	if _, err := svc.CreateCar(ctx, CreateCarInput{Title: "VW Golf", Price: decimal.NewFromInt(12000)}); err != nil {
		t.Fatalf("CreateCar returned error: %v", err)
	}

	if _, err := svc.ListCars(ctx); err != nil {
		t.Fatalf("ListCars returned error: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected invalidation to force a repo read, got %d calls", repo.listCalls)
	}
}

func mustNewService(t *testing.T, repo CarRepository, cache *Cache) Service {
	t.Helper()
	svc, err := NewService(repo, cache)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

type stubRepo struct {
	records   map[uuid.UUID]models.Car
	order     []uuid.UUID
	listCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{records: make(map[uuid.UUID]models.Car)}
}

func (s *stubRepo) seed(car models.Car) models.Car {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	s.records[car.ID] = car
	s.order = append(s.order, car.ID)
	return car
}

func (s *stubRepo) Create(_ context.Context, car *models.Car) (*models.Car, error) {
	car.ID = uuid.New()
	s.records[car.ID] = *car
	s.order = append(s.order, car.ID)
	return car, nil
}

func (s *stubRepo) Update(_ context.Context, car *models.Car) (*models.Car, error) {
	if _, ok := s.records[car.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.records[car.ID] = *car
	return car, nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := s.records[id]; !ok {
		return 0, nil
	}
	delete(s.records, id)
	return 1, nil
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Car, error) {
	car, ok := s.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &car, nil
}

func (s *stubRepo) List(_ context.Context) ([]models.Car, error) {
	s.listCalls++
	rows := make([]models.Car, 0, len(s.order))
	for _, id := range s.order {
		if car, ok := s.records[id]; ok {
			rows = append(rows, car)
		}
	}
	return rows, nil
}

var errCacheMiss = errors.New("cache miss")

type fakeCacheStore struct {
	data map[string]string
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{data: make(map[string]string)}
}

func (f *fakeCacheStore) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", errCacheMiss
	}
	return value, nil
}

func (f *fakeCacheStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeCacheStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeCacheStore) CarListKey() string { return "test:cars:list" }

func (f *fakeCacheStore) CarDetailKey(id string) string { return "test:cars:detail:" + id }
