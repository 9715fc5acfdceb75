package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shiplabel/cmd"
	httpin "shiplabel/internal/adapters/in/http"
	"shiplabel/internal/adapters/out/postgres/expeditionrepo"
	"shiplabel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateRefreshTrackingCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		CarrierAgency:     goDotEnvVariable("CARRIER_AGENCY"),
		CarrierDepartment: goDotEnvVariable("CARRIER_DEPARTMENT"),
		RasterServiceURL:  goDotEnvVariable("RASTER_SERVICE_URL"),
		StorefrontURL:     goDotEnvVariable("STOREFRONT_URL"),
		TrackingURL:       goDotEnvVariable("TRACKING_URL"),
		BatchWorkers:      goDotEnvVariable("BATCH_WORKERS"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&expeditionrepo.ExpeditionDTO{}); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateGenerateLabelCommandHandler(),
		app.CreateGenerateLabelsCommandHandler(),
		app.CreateRepeatLabelCommandHandler(),
		app.CreateCancelExpeditionCommandHandler(),
		app.CreateGetExpeditionsQueryHandler(),
		app.CreateGetExpeditionQueryHandler(),
		app.Catalog(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
