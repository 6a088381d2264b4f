package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gigbook/handlers"
	"gigbook/utils"
)

// HandlerBundle gathers the handlers the router wires up.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Calendar *handlers.CalendarHandler
	Draft    *handlers.DraftHandler
}

// RegisterBookingRoutes sets up intake and operator endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.SubmitHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id", hb.Booking.UpdateBookingHandler)
		api.PUT("/:id/status", hb.Booking.UpdateStatusHandler)
		api.POST("/:id/deposit-intent", hb.Booking.CreateDepositIntentHandler)
	}
}

// RegisterCalendarRoutes sets up the date-picker collaborator endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("/booked-dates", hb.Calendar.BookedDatesHandler)
		api.GET("/status-colors", hb.Calendar.StatusColorsHandler)
	}
}

// RegisterDraftRoutes sets up session-scoped form draft endpoints.
func RegisterDraftRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/drafts")
	{
		api.PUT("/:sessionID", hb.Draft.SaveDraftHandler)
		api.GET("/:sessionID", hb.Draft.GetDraftHandler)
		api.DELETE("/:sessionID", hb.Draft.DeleteDraftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
	RegisterHealthRoute(r)
}
