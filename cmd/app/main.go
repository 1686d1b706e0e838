package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"settlement/cmd"
	httpadapter "settlement/internal/adapters/in/http"
	"settlement/internal/adapters/out/postgres/batchrepo"
	"settlement/internal/adapters/out/postgres/csrepo"
	"settlement/internal/adapters/out/postgres/orderrepo"
	"settlement/internal/generated/servers"
	"settlement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		_ = app.Close()
	}()

	jobManager := jobs.NewJobManager(
		app.CreateSnapshotBatchesCommandHandler(),
		app.CreateRefreshStatsCommandHandler(),
		jobs.Schedules{
			BatchSnapshot: configs.BatchSnapshotSchedule,
			StatsRefresh:  configs.StatsRefreshSchedule,
		},
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		RedisAddr:              goDotEnvVariable("REDIS_ADDR"),
		BatchSnapshotSchedule:  goDotEnvVariable("BATCH_SNAPSHOT_SCHEDULE"),
		StatsRefreshSchedule:   goDotEnvVariable("STATS_REFRESH_SCHEDULE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.NumberSequenceDTO{},
		&csrepo.RecordDTO{},
		&batchrepo.SnapshotDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateConfirmOrdersCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateSendToVendorCommandHandler(),
		app.CreateRegisterTrackingCommandHandler(),
		app.CreateUpdateTrackingCommandHandler(),
		app.CreateRecallTrackingCommandHandler(),
		app.CreateRequestCancelCommandHandler(),
		app.CreateApproveCancelCommandHandler(),
		app.CreateRejectCancelCommandHandler(),
		app.CreateCompleteRefundCommandHandler(),
		app.CreateSubmitCSResolutionCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetConfirmationBatchesQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		swagger, err := servers.GetSwagger()
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, swagger)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
