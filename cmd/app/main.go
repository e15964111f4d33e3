package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"grameego/api"
	"grameego/cmd"
	"grameego/internal/adapters/out/postgres/accountrepo"
	"grameego/internal/adapters/out/postgres/deliveryrepo"
	"grameego/internal/adapters/out/postgres/shoprepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if _, err := api.Load(); err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)
	mustSeedShops(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.EnableExpiryJob {
		jobManager := app.CreateJobManager(logger)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:            goDotEnvVariable("JWT_SECRET"),
		JWTIssuer:            goDotEnvVariable("JWT_ISSUER"),
		JWTExpirationMinutes: goDotEnvIntVariable("JWT_EXPIRATION_MINUTES"),
		EnableExpiryJob:      goDotEnvVariable("ENABLE_EXPIRY_JOB") == "true",
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&accountrepo.AccountDTO{},
		&shoprepo.ShopDTO{},
		&shoprepo.ProductDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

func mustSeedShops(gormDB *gorm.DB) {
	repo := shoprepo.NewGormShopRepository(gormDB)
	if err := repo.Seed(context.Background(), shoprepo.DefaultCatalog()); err != nil {
		log.Fatalf("Failed to seed shop catalog: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
