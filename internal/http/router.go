package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"wanderlust-backend/internal/config"
	h "wanderlust-backend/internal/http/handlers"
	"wanderlust-backend/internal/http/middleware"
	"wanderlust-backend/internal/repositories"
	"wanderlust-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env config.Env, dbh *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	authHandler := h.AuthHandler{
		Auth: services.AuthService{
			DB:                   dbh,
			Users:                repositories.UserRepository{},
			JWTSecret:            secret,
			OperatorRegisterCode: env.OperatorRegisterCode,
		},
	}
	hotelHandler := h.HotelHandler{
		Hotels: services.HotelService{DB: dbh, Hotels: repositories.HotelRepository{}},
	}
	favoriteHandler := h.FavoriteHandler{
		Favorites: services.FavoriteService{
			DB:        dbh,
			Favorites: repositories.FavoriteRepository{},
			Hotels:    repositories.HotelRepository{},
		},
	}
	bookingHandler := h.BookingHandler{
		Bookings: services.BookingService{
			DB:       dbh,
			Bookings: repositories.BookingRepository{},
			Hotels:   repositories.HotelRepository{},
		},
		Docs: services.DocsService{DB: dbh, Bookings: repositories.BookingRepository{}},
	}
	systemHandler := h.SystemHandler{DB: dbh}

	authRequired := middleware.Auth(secret)
	operatorOnly := middleware.RequireOperator()

	api := r.Group("/api")
	{
		api.GET("/health", systemHandler.Health)
		api.GET("/db-check", systemHandler.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/change-password", authRequired, authHandler.ChangePassword)

		hotels := api.Group("/hotels")
		hotels.GET("", hotelHandler.List)
		hotels.GET("/:id", hotelHandler.Get)
		hotels.POST("", authRequired, operatorOnly, hotelHandler.Create)
		hotels.PUT("/:id", authRequired, operatorOnly, hotelHandler.Update)
		hotels.DELETE("/:id", authRequired, operatorOnly, hotelHandler.Delete)

		favorites := api.Group("/favorites", authRequired)
		favorites.GET("", favoriteHandler.List)
		favorites.POST("", favoriteHandler.Add)
		favorites.DELETE("/:hotelId", favoriteHandler.Remove)
		favorites.GET("/:hotelId/check", favoriteHandler.Check)

		bookings := api.Group("/bookings", authRequired)
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.ListForUser)
		bookings.GET("/operator", operatorOnly, bookingHandler.ListForOperator)
		bookings.GET("/:bookingId", bookingHandler.Get)
		bookings.GET("/:bookingId/voucher", bookingHandler.Voucher)
		bookings.GET("/:bookingId/invoice", bookingHandler.Invoice)
		bookings.POST("/:bookingId/cancel", bookingHandler.Cancel)
		bookings.POST("/:bookingId/confirm", operatorOnly, bookingHandler.Confirm)
		bookings.POST("/:bookingId/complete", operatorOnly, bookingHandler.Complete)
	}

	return r
}
