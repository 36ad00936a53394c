package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reservation-api/config"
	"github.com/yeremiapane/reservation-api/controllers"
	"github.com/yeremiapane/reservation-api/middlewares"
	"github.com/yeremiapane/reservation-api/repositories"
	"github.com/yeremiapane/reservation-api/services"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Rate limiter global per IP. Harus dipasang sebelum route didaftarkan:
	// gin menyalin chain handler saat registrasi, Use sesudahnya tidak
	// pernah jalan untuk route yang sudah ada.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Store + service wiring (constructor injection, tanpa handle global)
	tableRepo := repositories.NewTableRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	reservationSvc := services.NewReservationService(tableRepo, reservationRepo, config.StoreTimeout())

	userCtrl := controllers.NewUserController(db)
	tableCtrl := controllers.NewTableController(tableRepo)
	reservationCtrl := controllers.NewReservationController(reservationSvc, reservationRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk register/login
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// TABLES
	r.POST("/tables", tableCtrl.RegisterTable)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// RESERVATIONS (jalur tulis lewat admission service)
	r.POST("/reservations", reservationCtrl.CreateReservation)
	r.GET("/reservations", reservationCtrl.GetAllReservations)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.GET("/reservations", reservationCtrl.GetAllReservations)

	return r
}
