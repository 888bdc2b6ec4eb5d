package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/Geraxi/Flight-Fuel-sub000/api"
	"github.com/Geraxi/Flight-Fuel-sub000/config"
	"github.com/Geraxi/Flight-Fuel-sub000/database"
	"github.com/Geraxi/Flight-Fuel-sub000/middleware"
	"github.com/Geraxi/Flight-Fuel-sub000/models"
	"github.com/Geraxi/Flight-Fuel-sub000/repository"
	"github.com/Geraxi/Flight-Fuel-sub000/services"
)

func main() {
	// .env first so Viper's AutomaticEnv picks the values up.
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: [Main] No .env file found, relying on environment and config file.")
	}
	config.LoadConfig()

	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}
	runMigrations(db)

	// Repositories
	profileRepo := repository.NewProfileRepository(db)
	logRepo := repository.NewNutritionLogRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Services
	energyService := services.NewEnergyService()
	parserService := services.NewNutritionParserService()
	trackingService := services.NewTrackingService(profileRepo, logRepo, energyService, parserService)
	flightService := services.NewFlightService()
	phaseService := services.NewPhaseService()
	workoutService := services.NewWorkoutService()
	log.Println("INFO: [Main] Services initialized.")

	apiHandler := api.NewAPIHandler(
		profileRepo,
		logRepo,
		energyService,
		parserService,
		trackingService,
		flightService,
		phaseService,
		workoutService,
	)
	log.Println("INFO: [Main] API Handler initialized.")

	startMaintenanceJobs(logRepo)

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.BiometricProfile{},
		&models.NutritionLog{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

// startMaintenanceJobs schedules the nightly purge of soft-deleted meal logs.
func startMaintenanceJobs(logRepo repository.NutritionLogRepository) {
	schedule := config.AppConfig.Maintenance.PurgeSchedule
	retentionDays := config.AppConfig.Maintenance.RetentionDays
	if schedule == "" {
		log.Println("INFO: [Main] Maintenance purge schedule disabled.")
		return
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		purged, err := logRepo.PurgeDeletedBefore(cutoff)
		if err != nil {
			log.Printf("ERROR: [Maintenance] Purge of deleted nutrition logs failed: %v", err)
			return
		}
		log.Printf("INFO: [Maintenance] Purged %d soft-deleted nutrition logs older than %d days.", purged, retentionDays)
	})
	if err != nil {
		log.Printf("ERROR: [Main] Invalid maintenance schedule '%s': %v. Purge job disabled.", schedule, err)
		return
	}
	c.Start()
	log.Printf("INFO: [Main] Maintenance purge scheduled ('%s', retention %d days).", schedule, retentionDays)
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		profileGroup := apiGroup.Group("/profile")
		{
			profileGroup.POST("", handler.CreateProfileHandler)
			profileGroup.GET("/:userID", handler.GetProfileHandler)
			profileGroup.PUT("/:userID", handler.UpdateProfileHandler)
			profileGroup.DELETE("/:userID", handler.DeleteProfileHandler)
			profileGroup.GET("/:userID/targets", handler.GetTargetsHandler)
		}

		apiGroup.GET("/progress/:userID", handler.GetDailyProgressHandler)

		nutritionGroup := apiGroup.Group("/nutrition")
		{
			nutritionGroup.POST("/parse", handler.ParseNutritionHandler)
			nutritionGroup.POST("/log", handler.LogMealHandler)
			nutritionGroup.GET("/log/:userID", handler.GetMealLogsHandler)
			nutritionGroup.DELETE("/log/:id", handler.DeleteMealLogHandler)
		}

		flightGroup := apiGroup.Group("/flight")
		{
			flightGroup.GET("/estimate", handler.EstimateFlightHandler)
			flightGroup.GET("/airports", handler.ListAirportsHandler)
		}

		apiGroup.GET("/plan/daily", handler.DailyPlanHandler)

		workoutGroup := apiGroup.Group("/workout")
		{
			workoutGroup.POST("/generate", handler.GenerateProgramHandler)
			workoutGroup.POST("/substitute", handler.SubstituteExerciseHandler)
			workoutGroup.GET("/exercises", handler.ListExercisesHandler)
		}

		apiGroup.POST("/scan", handler.ScanMealHandler)
	}
}
