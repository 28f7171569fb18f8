package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"storefront/cmd"
	httpserver "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/itemrepo"
	"storefront/internal/adapters/out/postgres/ledgerrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/transitionrepo"
	"storefront/internal/core/domain/model/item"
	"storefront/internal/core/domain/services"
	"storefront/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	createDatabaseIfNotExists(configs)

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	graph, err := loadTransitionGraph(ctx, gormDB)
	if err != nil {
		log.Fatalf("Failed to load transition graph: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, graph, logger)

	jobManager, err := app.CreateJobManager(holdTTL(configs))
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		HoldTTL:    goDotEnvVariable("HOLD_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// holdTTL parses the configured hold lifetime. Unset means 30 minutes.
func holdTTL(configs cmd.Config) time.Duration {
	if configs.HoldTTL == "" {
		return 30 * time.Minute
	}
	ttl, err := time.ParseDuration(configs.HoldTTL)
	if err != nil {
		log.Fatalf("Invalid HOLD_TTL %q: %v", configs.HoldTTL, err)
	}
	return ttl
}

// createDatabaseIfNotExists probes the maintenance database through lib/pq
// and creates the application database when it is missing, so a fresh
// environment starts without manual steps.
func createDatabaseIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		// Database names cannot be bound as parameters
		if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&itemrepo.ItemDTO{},
		&itemrepo.StateHistoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&ledgerrepo.EntryDTO{},
		&transitionrepo.TransitionDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

// loadTransitionGraph seeds the default inventory edges and loads the full
// edge set. Seeding is idempotent, so deployments that added their own edges
// keep them.
func loadTransitionGraph(ctx context.Context, gormDB *gorm.DB) (*services.TransitionGraph, error) {
	repository := transitionrepo.NewGormTransitionRepository(gormDB)

	defaults := []struct {
		from, to    item.State
		description string
	}{
		{item.StateAvailable, item.StateHeld, "reserved by order"},
		{item.StateHeld, item.StateAvailable, "hold released"},
		{item.StateHeld, item.StateSold, "sale completed"},
		{item.StateAvailable, item.StateTesting, "sent to testing"},
		{item.StateTesting, item.StateAvailable, "passed testing"},
		{item.StateTesting, item.StateDisposed, "failed testing"},
		{item.StateAvailable, item.StateDisposed, "written off"},
	}
	for _, edge := range defaults {
		transition, err := item.NewTransition(edge.from, edge.to, edge.description)
		if err != nil {
			return nil, err
		}
		if err := repository.Add(ctx, transition); err != nil {
			return nil, err
		}
	}

	transitions, err := repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return services.NewTransitionGraph(transitions)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateReleaseItemCommandHandler(),
		app.CreateApplyItemTransitionCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateRecordLedgerEntryCommandHandler(),
		app.CreateTransferCreditCommandHandler(),
		app.CreateGetOrderBalanceQueryHandler(),
		app.CreateGetOrderLedgerQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
