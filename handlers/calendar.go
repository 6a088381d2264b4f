package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gigbook/config"
	"gigbook/models"
	"gigbook/services/scheduling"
	"gigbook/utils"
)

// CalendarHandler serves the date-picker collaborator: which dates to
// disable, and how to color each status.
type CalendarHandler struct {
	Service scheduling.BookingService
}

func NewCalendarHandler(svc scheduling.BookingService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

// BookedDatesHandler lists dates with at least one active booking over the
// configured lookahead window.
func (h *CalendarHandler) BookedDatesHandler(c *gin.Context) {
	months := config.AppConfig.LookaheadMonths
	if months <= 0 {
		months = 6
	}

	dates, err := h.Service.BookedDates(c.Request.Context(), time.Now(), months)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "persistence failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookedDates": dates, "lookaheadMonths": months})
}

// StatusColorsHandler returns the fixed status-to-color presentation map.
func (h *CalendarHandler) StatusColorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"colors": models.StatusColors})
}
