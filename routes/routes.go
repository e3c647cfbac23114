package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and services the routes need.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	User         *handlers.UserHandler
	Doctor       *handlers.DoctorHandler
	UserService  user.UserService
}

// RegisterRoutes wires the portal's HTTP surface.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server root path")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})

	// Catalog and availability are public.
	r.GET("/service", hb.Availability.GetServices)
	r.GET("/available", hb.Availability.GetAvailable)

	// Booking creation is public; the caller books on behalf of the patient
	// in the payload. Reading a patient's history requires their token.
	r.POST("/booking", hb.Booking.CreateBooking)
	r.GET("/booking", middleware.JWTAuthMiddleware(), hb.Booking.GetPatientBookings)

	// Account routes. The upsert doubles as sign-in and returns the token.
	r.PUT("/user/:email", hb.User.UpsertUser)
	r.GET("/user", middleware.JWTAuthMiddleware(), hb.User.GetUsers)
	r.GET("/admin/:email", hb.User.GetAdmin)
	r.PUT("/user/admin/:email", middleware.JWTAuthMiddleware(), hb.User.MakeAdmin)

	// Doctor management requires an authenticated admin.
	admin := r.Group("/doctor")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminAuthMiddleware(hb.UserService))
	{
		admin.GET("", hb.Doctor.GetDoctors)
		admin.POST("", hb.Doctor.AddDoctor)
		admin.DELETE("/:email", hb.Doctor.DeleteDoctor)
	}
}
