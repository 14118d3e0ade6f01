package routes

import (
	"net/http"
	"time"

	"mindhaven/handlers"
	"mindhaven/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler the router wires up.
type HandlerBundle struct {
	Booking     *handlers.BookingHandler
	Session     *handlers.SessionHandler
	Therapist   *handlers.TherapistHandler
	Appointment *handlers.AppointmentHandler
}

// RegisterBookingRoutes sets up the instant-booking endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/instant", hb.Booking.InstantBook)
	}
}

// RegisterAppointmentRoutes sets up appointment reads and the session
// join/end endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Appointment.ListAppointments)
		api.GET("/:id", hb.Appointment.GetAppointment)
		api.POST("/:id/join", hb.Session.Join)
		api.POST("/:id/end", hb.Session.End)
	}
}

// RegisterTherapistRoutes sets up therapist availability checks.
func RegisterTherapistRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id/availability", hb.Therapist.GetAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MindHaven"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
}
