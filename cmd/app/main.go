package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"printflow/cmd"
	"printflow/internal/adapters/out/postgres/jobrepo"
	"printflow/internal/adapters/out/postgres/ledgerrepo"
	"printflow/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&jobrepo.JobDTO{}, &ledgerrepo.TransitionDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error accessing database connection: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, sqlDB, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.StartListener(ctx)

	if err = app.JobManager().StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer app.JobManager().StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		InstanceID:          goDotEnvVariable("INSTANCE_ID"),
		StaleAfterMinutes:   goDotEnvVariable("STALE_AFTER_MINUTES"),
		LockRetryAttempts:   goDotEnvVariable("LOCK_RETRY_ATTEMPTS"),
		LockRetryWaitMillis: goDotEnvVariable("LOCK_RETRY_WAIT_MILLIS"),
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

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	servers.RegisterHandlers(e, app.CreateHTTPServer())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
