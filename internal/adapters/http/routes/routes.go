package routes

import (
	"gjb-leaguehub/internal/adapters/http/handlers"
	"gjb-leaguehub/internal/adapters/http/middleware"
	"gjb-leaguehub/internal/adapters/persistence/repositories"
	"gjb-leaguehub/internal/config"
	"gjb-leaguehub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CronService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	roundRepo := repositories.NewRoundRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	awardTypeRepo := repositories.NewAwardTypeRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	notifyService := services.NewNotifyService()
	authService := services.NewAuthService(userRepo, refreshTokenRepo, memberRepo, cfg)
	memberService := services.NewMemberService(memberRepo, notifyService)
	seasonService := services.NewSeasonService(memberRepo, roundRepo, settingsRepo, cfg)
	roundService := services.NewRoundService(roundRepo, memberRepo, settingsRepo, awardTypeRepo, notifyService, cfg)
	expenseService := services.NewExpenseService(expenseRepo, roundRepo, notifyService, cfg)
	dashboardService := services.NewDashboardService(db, seasonService, settingsRepo)
	cronService := services.NewCronService(seasonService, refreshTokenRepo, cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	memberHandler := handlers.NewMemberHandler(memberService)
	roundHandler := handlers.NewRoundHandler(roundService)
	seasonHandler := handlers.NewSeasonHandler(seasonService, awardTypeRepo)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	eventsHandler := handlers.NewEventsHandler(notifyService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, memberHandler, roundHandler,
		seasonHandler, expenseHandler, dashboardHandler, eventsHandler, cfg)

	return cronService
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	memberHandler *handlers.MemberHandler,
	roundHandler *handlers.RoundHandler,
	seasonHandler *handlers.SeasonHandler,
	expenseHandler *handlers.ExpenseHandler,
	dashboardHandler *handlers.DashboardHandler,
	eventsHandler *handlers.EventsHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Member roster routes (Authenticated; writes are Admin only)
	memberRoutes := router.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	setupMemberRoutes(memberRoutes, memberHandler)

	// Round routes (Authenticated reads, Admin writes)
	roundRoutes := router.Group("/rounds")
	roundRoutes.Use(middleware.AuthMiddleware(cfg))
	setupRoundRoutes(roundRoutes, roundHandler, expenseHandler)

	// Season view routes (Authenticated)
	seasonRoutes := router.Group("/season")
	seasonRoutes.Use(middleware.AuthMiddleware(cfg))
	setupSeasonRoutes(seasonRoutes, seasonHandler)

	// Master data (award vocabulary)
	router.Get("/master/award-types", middleware.AuthMiddleware(cfg), seasonHandler.AwardTypes)

	// Expense delete sits outside the round group
	router.Delete("/expenses/:expenseId",
		middleware.AuthMiddleware(cfg), middleware.AdminOnly(), expenseHandler.Delete)

	// Dashboard routes (Admin only)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Use(middleware.AdminOnly())
	dashboardRoutes.Get("/admin", dashboardHandler.Admin)

	// SSE live updates (Authenticated)
	router.Get("/events", middleware.AuthMiddleware(cfg), eventsHandler.Stream)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupMemberRoutes configures roster routes
func setupMemberRoutes(router fiber.Router, handler *handlers.MemberHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)

	// Admin writes
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Patch("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Deactivate)
}

// setupRoundRoutes configures round entry and round read routes
func setupRoundRoutes(router fiber.Router, roundHandler *handlers.RoundHandler, expenseHandler *handlers.ExpenseHandler) {
	// Draft workflow (Admin only)
	draftRoutes := router.Group("/draft")
	draftRoutes.Use(middleware.AdminOnly())
	draftRoutes.Get("/", roundHandler.GetDraft)
	draftRoutes.Put("/", roundHandler.UpdateDraft)
	draftRoutes.Patch("/", roundHandler.UpdateDraft)
	draftRoutes.Get("/preview", roundHandler.Preview)
	draftRoutes.Post("/carts", roundHandler.BuildCarts)
	draftRoutes.Get("/awards/recommend", roundHandler.RecommendAwards)
	draftRoutes.Post("/awards", roundHandler.AddAward)
	draftRoutes.Delete("/awards/:index", roundHandler.RemoveAward)

	// Saved rounds
	router.Post("/", middleware.AdminOnly(), roundHandler.Save)
	router.Get("/", roundHandler.List)
	router.Get("/:id", roundHandler.Get)
	router.Delete("/:id", middleware.AdminOnly(), roundHandler.Delete)

	// Per-round expenses
	router.Get("/:id/expenses", expenseHandler.List)
	router.Post("/:id/expenses", middleware.AdminOnly(), expenseHandler.Create)
}

// setupSeasonRoutes configures the snapshot read and derived views
func setupSeasonRoutes(router fiber.Router, handler *handlers.SeasonHandler) {
	router.Get("/", handler.Snapshot)
	router.Get("/standings", handler.Standings)
	router.Get("/stats", handler.Stats)
	router.Get("/attendance", handler.Attendance)
	router.Get("/hat", handler.Hat)
	router.Get("/dues", handler.Dues)
	router.Get("/expenses", handler.ExpenseSummary)
	router.Post("/rank-preview", handler.PreviewRanks)
}
