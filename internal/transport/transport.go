package transport

import (
	"net/http"

	"github.com/ds124wfegd/travelbooker/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Home        *HomeHandler
	Destination *DestinationHandler
	Package     *PackageHandler
	Customer    *CustomerHandler
	Booking     *BookingHandler
	Auth        *AuthHandler
}

func InitRoutes(h *Handlers, tokenParser middleware.TokenParser) *gin.Engine {

	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	adminOnly := middleware.AdminOnly(tokenParser)

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/summary", h.Home.GetSummary)

		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		destinations := api.Group("/destinations")
		{
			destinations.GET("", h.Destination.ListDestinations)
			destinations.POST("", h.Destination.CreateDestination)
			destinations.GET("/countries", h.Destination.ListCountries)
			destinations.GET("/:id", h.Destination.GetDestination)
			destinations.PUT("/:id", h.Destination.UpdateDestination)
			destinations.DELETE("/:id", adminOnly, h.Destination.DeleteDestination)
		}

		packages := api.Group("/packages")
		{
			packages.GET("", h.Package.ListPackages)
			packages.POST("", h.Package.CreatePackage)
			packages.GET("/:id", h.Package.GetPackage)
			packages.PUT("/:id", h.Package.UpdatePackage)
			packages.DELETE("/:id", adminOnly, h.Package.DeletePackage)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", h.Customer.ListCustomers)
			customers.POST("", h.Customer.CreateCustomer)
			customers.GET("/:id", h.Customer.GetCustomer)
			customers.PUT("/:id", h.Customer.UpdateCustomer)
			customers.DELETE("/:id", adminOnly, h.Customer.DeleteCustomer)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", h.Booking.ListBookings)
			bookings.POST("", h.Booking.CreateBooking)
			bookings.GET("/:id", h.Booking.GetBooking)
			bookings.PUT("/:id", h.Booking.UpdateBooking)
			bookings.POST("/:id/cancel", h.Booking.CancelBooking)
			bookings.DELETE("/:id", adminOnly, h.Booking.DeleteBooking)
		}

		// Admin routes
		admin := api.Group("/admin", adminOnly)
		{
			admin.POST("/seed", h.Auth.Seed)
		}
	}

	// Home page redirects to the summary endpoint
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api/v1/summary")
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return router
}
