// one-shot database seeding, safe to run repeatedly
package main

import (
	"context"

	"github.com/ds124wfegd/travelbooker/config"
	repository "github.com/ds124wfegd/travelbooker/internal/database/postgres"
	"github.com/ds124wfegd/travelbooker/internal/service"
	"github.com/ds124wfegd/travelbooker/pkg/postgres"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	seedService := service.NewSeedService(
		repository.NewDestinationRepository(db),
		repository.NewPackageRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewBookingRepository(db),
		repository.NewAdminRepository(db),
	)

	report, err := seedService.Seed(context.Background())
	if err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"destinations_created": report.DestinationsCreated,
		"packages_created":     report.PackagesCreated,
		"customers_created":    report.CustomersCreated,
		"bookings_created":     report.BookingsCreated,
		"admin_created":        report.AdminCreated,
	}).Info("database seeded")
}
