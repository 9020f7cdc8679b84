package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lakeview/hotel-system/docs"
	"github.com/lakeview/hotel-system/internal/api/handler"
	"github.com/lakeview/hotel-system/internal/api/middleware"
	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/service"
	"github.com/lakeview/hotel-system/internal/infrastructure/config"
	mongodb "github.com/lakeview/hotel-system/internal/infrastructure/db/mongo"
	redisdb "github.com/lakeview/hotel-system/internal/infrastructure/db/redis"
	"github.com/lakeview/hotel-system/internal/infrastructure/queue"
	"github.com/lakeview/hotel-system/internal/infrastructure/storage"
	"github.com/lakeview/hotel-system/pkg/logger"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it alongside the order-event dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, uploads *storage.Uploads) (*echo.Echo, *queue.Dispatcher) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	orderEventRepo := mongodb.NewOrderEventRepository(db)
	billRepo := mongodb.NewBillRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionStore, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	roomService := service.NewRoomService(roomRepo, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, log)
	menuService := service.NewMenuService(menuRepo, log)
	tableTokens := service.NewTableTokenService(cfg.TableTokenSecret, cfg.TableTokenTTL)
	orderService := service.NewOrderService(orderRepo, menuRepo, tableTokens, log)
	orderEventService := service.NewOrderEventService(orderRepo, orderEventRepo, dedup, log)
	billingService := service.NewBillingService(billRepo, bookingRepo, orderRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)
	reportService := service.NewReportService(reportRepo, log)

	dispatcher := queue.NewDispatcher(0, orderEventService, logger.Component("dispatcher"))

	// --- Handlers ---
	cookie := handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}
	authHandler := handler.NewAuthHandler(authService, cookie)
	userHandler := handler.NewUserHandler(userService, uploads)
	roomHandler := handler.NewRoomHandler(roomService, uploads)
	bookingHandler := handler.NewBookingHandler(bookingService)
	menuHandler := handler.NewMenuHandler(menuService, tableTokens, uploads)
	orderHandler := handler.NewOrderHandler(orderService, dispatcher)
	billingHandler := handler.NewBillingHandler(billingService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	reportHandler := handler.NewReportHandler(reportService)
	pageHandler := handler.NewPageHandler()

	requireAuth := middleware.Auth(authService, cfg.Session.CookieName)
	optionalAuth := middleware.OptionalAuth(authService, cfg.Session.CookieName)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)
	e.GET("/api/auth/bootstrap", authHandler.Bootstrap)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)

	// --- Users ---
	e.PUT("/api/users/me", userHandler.UpdateMe, requireAuth)
	users := e.Group("/api/users", requireAuth, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.CreateStaff)
	users.PUT("/:id/active", userHandler.SetActive)

	// --- Rooms: public listing, gated mutation ---
	e.GET("/api/rooms", roomHandler.List)
	e.GET("/api/rooms/:number", roomHandler.Get)
	rooms := e.Group("/api/rooms", requireAuth, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	rooms.POST("", roomHandler.Create)
	rooms.PUT("/:number", roomHandler.Update)
	rooms.PUT("/:number/image", roomHandler.UploadImage)
	rooms.DELETE("/:number", roomHandler.Delete)

	// --- Bookings ---
	bookings := e.Group("/api/bookings", requireAuth)
	bookings.POST("", bookingHandler.Create, middleware.RBAC(domain.RoleCustomer, domain.RoleReceptionist, domain.RoleAdmin, domain.RoleManager))
	bookings.GET("", bookingHandler.List)
	bookings.GET("/:reference", bookingHandler.Get)
	bookings.PUT("/:reference/status", bookingHandler.Transition, middleware.RBAC(domain.RoleReceptionist, domain.RoleAdmin, domain.RoleManager))

	// --- Menu: public listing, gated mutation ---
	e.GET("/api/menu", menuHandler.List)
	e.GET("/api/menu/:id", menuHandler.Get)
	menu := e.Group("/api/menu", requireAuth, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	menu.POST("", menuHandler.Create)
	menu.PUT("/:id", menuHandler.Update)
	menu.PUT("/:id/image", menuHandler.UploadImage)
	menu.DELETE("/:id", menuHandler.Delete)
	e.POST("/api/menu/table-tokens", menuHandler.MintTableToken, requireAuth, middleware.RBAC(middleware.Staff()...))

	// --- Orders: placement works with a session or a table token ---
	e.POST("/api/orders", orderHandler.Place, optionalAuth)
	e.GET("/api/orders", orderHandler.List, requireAuth)
	e.GET("/api/orders/:number", orderHandler.Get, requireAuth)
	events := e.Group("/api/order-events", requireAuth, middleware.RBAC(domain.RoleReceptionist, domain.RoleCashier, domain.RoleManager))
	events.POST("", orderHandler.SubmitEvent)
	events.POST("/batch", orderHandler.SubmitEventBatch)

	// --- Billing ---
	bills := e.Group("/api/bills", requireAuth, middleware.RBAC(domain.RoleCashier, domain.RoleAdmin))
	bills.POST("", billingHandler.Issue)
	bills.GET("", billingHandler.List)
	bills.GET("/:number", billingHandler.Get)
	bills.PUT("/:number/settle", billingHandler.Settle)

	// --- Feedback ---
	e.POST("/api/feedback", feedbackHandler.Submit, requireAuth, middleware.RBAC(domain.RoleCustomer))
	e.GET("/api/feedback", feedbackHandler.List, requireAuth, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))

	// --- Reports ---
	e.GET("/api/reports/summary", reportHandler.Summary, requireAuth, middleware.RBAC(domain.RoleAdmin, domain.RoleManager))

	// --- Pages: public shells plus the five guarded dashboard subtrees ---
	e.GET("/", pageHandler.Public, optionalAuth)
	e.GET("/rooms", pageHandler.Public, optionalAuth)
	e.GET("/contact", pageHandler.Public, optionalAuth)
	e.GET("/login", pageHandler.Public, optionalAuth)
	e.GET("/register", pageHandler.Public, optionalAuth)
	for _, role := range domain.Roles() {
		surface := role.LandingPath()
		group := e.Group(surface, optionalAuth, middleware.Guard(surface))
		group.GET("", pageHandler.Dashboard(surface))
		group.GET("/*", pageHandler.Dashboard(surface))
	}

	// --- Static uploads ---
	e.Static(storage.URLPrefix, uploads.Dir())

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e, dispatcher
}
