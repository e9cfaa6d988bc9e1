package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/yobeidat/obeidat-motors-backend/internal/cars"
	"github.com/yobeidat/obeidat-motors-backend/internal/users"
	"github.com/yobeidat/obeidat-motors-backend/pkg/config"
	"github.com/yobeidat/obeidat-motors-backend/pkg/db"
	"github.com/yobeidat/obeidat-motors-backend/pkg/logger"
	"github.com/yobeidat/obeidat-motors-backend/pkg/security"
)

// seed loads a small showroom inventory for local development, plus an
// optional admin user.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	adminUser := flag.String("admin", "", "create an admin user with this username")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	carService, err := cars.NewService(cars.NewRepository(dbClient.DB()), nil)
	if err != nil {
		logg.Error(ctx, "failed to create car service", err)
		os.Exit(1)
	}

	for _, input := range showroomInventory() {
		created, err := carService.CreateCar(ctx, input)
		if err != nil {
			logg.Error(ctx, "failed to seed car", err)
			os.Exit(1)
		}
		ctx := logg.WithCarID(ctx, created.ID.String())
		logg.Info(ctx, "seeded car: "+created.Title)
	}

	if *adminUser != "" {
		password, err := security.GenerateTempPassword(16)
		if err != nil {
			logg.Error(ctx, "failed to generate admin password", err)
			os.Exit(1)
		}

		userRepo := users.NewRepository(dbClient.DB(), cfg.Password)
		created, err := userRepo.Create(ctx, *adminUser, password)
		if err != nil {
			logg.Error(ctx, "failed to seed admin user", err)
			os.Exit(1)
		}

		logg.Info(ctx, "seeded admin user "+created.Username)
		fmt.Printf("admin %s created with temporary password: %s\n", created.Username, password)
	}

	logg.Info(ctx, "seed completed")
}

func showroomInventory() []cars.CreateCarInput {
	return []cars.CreateCarInput{
		{
			Title:       "Kia Sportage GT-Line 2021",
			Price:       decimal.RequireFromString("21500.00"),
			Mileage:     42000,
			Year:        2021,
			Make:        "Kia",
			Gearbox:     "Automatic",
			Engine:      "1.6L Turbo",
			Drive:       "AWD",
			Fuel:        "Petrol",
			Color:       "White",
			Origin:      "GCC",
			Images:      []string{},
			Description: "Single owner, agency maintained with full service history.",
		},
		{
			Title:       "Mazda 6 Ultra 2017",
			Price:       decimal.RequireFromString("14500.00"),
			Mileage:     95000,
			Year:        2017,
			Make:        "Mazda",
			Gearbox:     "Automatic",
			Engine:      "2.0L",
			Drive:       "FWD",
			Fuel:        "Petrol",
			Color:       "Blue",
			Origin:      "GCC",
			Images:      []string{},
			Description: "Clean sedan with new tires and a recent major service.",
		},
		{
			Title:       "Hyundai Ioniq 5 2023",
			Price:       decimal.RequireFromString("38900.00"),
			Mileage:     12000,
			Year:        2023,
			Make:        "Hyundai",
			Gearbox:     "Automatic",
			Engine:      "Electric 77kWh",
			Drive:       "AWD",
			Fuel:        "Electric",
			Color:       "Gray",
			Origin:      "Company",
			Images:      []string{},
			Description: "Long range battery, still under factory warranty.",
		},
		{
			Title:       "Toyota Corolla Hybrid 2020",
			Price:       decimal.RequireFromString("16750.00"),
			Mileage:     68000,
			Year:        2020,
			Make:        "Toyota",
			Gearbox:     "Automatic",
			Engine:      "1.8L Hybrid",
			Drive:       "FWD",
			Fuel:        "Hybrid",
			Color:       "Silver",
			Origin:      "GCC",
			Images:      []string{},
			Description: "Economical daily driver, battery health verified.",
		},
		{
			Title:       "Mercedes-Benz C200 2019",
			Price:       decimal.RequireFromString("29900.00"),
			Mileage:     54000,
			Year:        2019,
			Make:        "Mercedes-Benz",
			Gearbox:     "Automatic",
			Engine:      "2.0L Turbo",
			Drive:       "RWD",
			Fuel:        "Petrol",
			Color:       "Black",
			Origin:      "European",
			Images:      []string{},
			Description: "AMG styling package, panoramic roof, no accidents.",
		},
	}
}
