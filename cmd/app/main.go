package main

import (
	"fmt"
	"net/http"
	"os"

	"zepta/cmd"
	zeptahttp "zepta/internal/adapters/in/http"
	"zepta/internal/adapters/out/postgres/agentrepo"
	"zepta/internal/adapters/out/postgres/orderrepo"
	"zepta/internal/adapters/out/postgres/reviewrepo"
	"zepta/internal/adapters/out/postgres/storerepo"
	"zepta/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	if configs.AutoAssignEnabled {
		jobManager := jobs.NewJobManager(
			app.CreateBulkAssignAgentsCommandHandler(),
			configs.AutoAssignSchedule,
			app.Logger(),
		)
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("Failed to start background jobs: %v", err)
		}
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AutoAssignEnabled:  goDotEnvVariable("AUTO_ASSIGN_ENABLED") == "true",
		AutoAssignSchedule: goDotEnvVariable("AUTO_ASSIGN_SCHEDULE"),
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
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&storerepo.StoreDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := zeptahttp.NewServer(
		app.CreateCreateStoreCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateUpdateAgentLocationCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateAssignAgentCommandHandler(),
		app.CreateBulkAssignAgentsCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetAgentsQueryHandler(),
		app.CreateGetStoresQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
