package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/logger"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Declaration Scheduler API
// @version         1.0
// @description     Accounting-office backend: customers, declaration rule catalog, and per-customer tax return scheduling.
// @host            localhost:8080
// @BasePath        /
func main() {
	// configs/.env is optional; env vars may come from the environment directly
	_ = godotenv.Load("configs/.env")

	log := logger.New(logger.Config{
		Env:   getEnv("APP_ENV", "development"),
		Level: getEnv("LOG_LEVEL", "info"),
	})

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "postgres")
	dbSslMode := getEnv("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	db, err := database.NewConnection(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("Database connection failed")
	}
	log.Info().Str("host", dbHost).Str("database", dbName).Msg("Connected to PostgreSQL")

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingRepo := repository.NewCustomerSettingRepository(db)
	ruleRepo := repository.NewDeclarationRuleRepository(db)
	taxReturnRepo := repository.NewTaxReturnRepository(db)

	customerService := service.NewCustomerService(customerRepo, settingRepo, ruleRepo, txManager)
	configService := service.NewDeclarationConfigService(ruleRepo, taxReturnRepo)
	taxReturnService := service.NewTaxReturnService(taxReturnRepo, ruleRepo, settingRepo, customerRepo, txManager, log)
	statisticsService := service.NewStatisticsService(db)

	customerHandler := handler.NewCustomerHandler(customerService)
	configHandler := handler.NewDeclarationConfigHandler(configService)
	taxReturnHandler := handler.NewTaxReturnHandler(taxReturnService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Register API Routes
	customerHandler.RegisterRoutes(router.Group(""))
	configHandler.RegisterRoutes(router.Group(""))
	taxReturnHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	port := getEnv("PORT", "8080")

	log.Info().Str("port", port).Msg("Server listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
