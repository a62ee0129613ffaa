package routes

import (
	"fmt"
	"time"

	"rotation-manager-backend/internal/api/handlers"
	"rotation-manager-backend/internal/api/middleware"
	"rotation-manager-backend/internal/auth"
	"rotation-manager-backend/internal/config"
	"rotation-manager-backend/internal/holiday"
	"rotation-manager-backend/internal/logger"
	"rotation-manager-backend/internal/repository"
	"rotation-manager-backend/internal/rotation"
	"rotation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes builds the rotation engine from configuration and wires
// all routes. The db may be nil; swap persistence is then disabled and
// the ledger lives purely in memory.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	log := logger.New()

	// Build the rotation engine
	engineers := make([]rotation.Engineer, 0, len(cfg.Engineers))
	countries := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, eng := range cfg.Engineers {
		engineers = append(engineers, rotation.Engineer{
			Name:      eng.Name,
			Letter:    eng.Letter,
			Seniority: eng.Seniority,
			Country:   eng.Country,
			Region:    eng.Region,
		})
		if eng.Country != "" && !seen[eng.Country] {
			seen[eng.Country] = true
			countries = append(countries, eng.Country)
		}
	}

	cycle, err := rotation.NewCycle(rotation.Config{
		Engineers:    engineers,
		RotationDays: cfg.RotationDays,
		MandatoryDay: cfg.MandatoryDay,
	})
	if err != nil {
		return nil, fmt.Errorf("build rotation cycle: %w", err)
	}

	var scheduleOpts []rotation.ScheduleOption
	if cfg.ScheduleAnchor != "" {
		anchor, err := time.Parse("2006-01-02", cfg.ScheduleAnchor)
		if err != nil {
			return nil, fmt.Errorf("parse SCHEDULE_ANCHOR: %w", err)
		}
		scheduleOpts = append(scheduleOpts, rotation.WithAnchor(anchor.UTC()))
	}
	schedule := rotation.NewSchedule(cycle, scheduleOpts...)
	ledger := rotation.NewLedger()
	swapValidator := rotation.NewValidator(schedule)

	// Initialize validator
	validate := validator.New()

	var oracle holiday.Oracle = holiday.None{}
	if len(countries) > 0 {
		registry, err := holiday.NewRegistry(countries...)
		if err != nil {
			return nil, fmt.Errorf("build holiday registry: %w", err)
		}
		oracle = registry
	}

	// Initialize repositories
	var swapRepo *repository.SwapRepository
	var engRepo *repository.EngineerRepository
	if db != nil {
		swapRepo = repository.NewSwapRepository(db)
		engRepo = repository.NewEngineerRepository(db)
	}

	// Initialize services
	scheduleService := service.NewScheduleService(schedule, ledger, oracle, cfg.DefaultWeeks, cfg.MaxWeeks)
	swapService := service.NewSwapService(swapValidator, ledger, swapRepo, engRepo, validate, log)
	calendarService := service.NewCalendarService(schedule, ledger, oracle, cfg.DefaultWeeks, cfg.MaxWeeks)

	if err := swapService.Reload(); err != nil {
		return nil, fmt.Errorf("reload swap ledger: %w", err)
	}

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.Approvers)
	if err != nil {
		return nil, fmt.Errorf("initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cycle)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	swapHandler := handlers.NewSwapHandler(swapService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.Validate)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		schedule := v1.Group("/schedule")
		{
			schedule.GET("/weeks/:week", scheduleHandler.GetWeek)
			schedule.GET("/weeks/:week/pattern", scheduleHandler.GetPattern)
			schedule.GET("/oncall/:week", scheduleHandler.GetOnCall)
			schedule.GET("/week-for-date", scheduleHandler.GetWeekForDate)
			schedule.GET("/fairness", scheduleHandler.GetFairness)
		}

		v1.GET("/engineers", scheduleHandler.GetEngineers)

		swaps := v1.Group("/swaps")
		{
			swaps.POST("", swapHandler.CreateSwap)
			swaps.GET("", swapHandler.ListSwaps)
			swaps.GET("/:id", swapHandler.GetSwap)
			swaps.POST("/:id/approve", authMiddleware.RequireAuth(), swapHandler.ApproveSwap)
			swaps.POST("/:id/reject", authMiddleware.RequireAuth(), swapHandler.RejectSwap)
		}

		calendar := v1.Group("/calendar")
		{
			calendar.GET("/rotation.ics", calendarHandler.GetICal)
			calendar.GET("/rotation.csv", calendarHandler.GetCSV)
			calendar.GET("/engineers/:name/rotation.ics", calendarHandler.GetEngineerICal)
		}
	}

	return router, nil
}
