package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingRepo "gigbook/database/repository/booking"
	"gigbook/models"
	"gigbook/services/payment"
	"gigbook/services/scheduling"
	"gigbook/utils"
)

// BookingHandler exposes the intake and operator endpoints over the
// scheduling service.
type BookingHandler struct {
	Service  scheduling.BookingService
	Payments payment.DepositCollaborator
	Logger   *zap.Logger
}

func NewBookingHandler(svc scheduling.BookingService, payments payment.DepositCollaborator, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments, Logger: logger}
}

// SubmitHandler accepts a client's booking request.
func (h *BookingHandler) SubmitHandler(c *gin.Context) {
	var req scheduling.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.Submit(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(booking))
}

// GetBookingHandler returns one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(booking))
}

// ListBookingsHandler returns active bookings, optionally bounded by
// ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var rng *bookingRepo.DateRange
	from, to := c.Query("from"), c.Query("to")
	if from != "" && to != "" {
		rng = &bookingRepo.DateRange{From: from, To: to}
	}

	bookings, err := h.Service.ListActive(c.Request.Context(), rng)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	responses := make([]models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": responses})
}

// UpdateBookingHandler applies an operator edit to a booking.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var patch scheduling.UpdatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(booking))
}

// UpdateStatusHandler moves a booking through the status workflow.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Service.Update(c.Request.Context(), c.Param("id"), scheduling.UpdatePatch{
		Status: &input.Status,
	})
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(booking))
}

// CreateDepositIntentHandler hands the booking's price and deposit to the
// payment collaborator and returns the resulting payment intent.
func (h *BookingHandler) CreateDepositIntentHandler(c *gin.Context) {
	booking, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	quote := models.DepositQuote{
		BookingID:     booking.ID,
		Price:         booking.Price,
		DepositAmount: scheduling.DepositAmount(booking.Price),
	}
	intent, err := h.Payments.CreateDepositIntent(c.Request.Context(), quote)
	if err != nil {
		h.Logger.Error("deposit intent creation failed", zap.String("booking_id", booking.ID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment collaborator failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, intent)
}

func toResponse(b *models.Booking) models.BookingResponse {
	return models.BookingResponse{
		Booking:       *b,
		DepositPaid:   b.DepositPaid(),
		DepositAmount: scheduling.DepositAmount(b.Price),
	}
}

// respondSchedulingError maps scheduling outcomes onto HTTP statuses.
func respondSchedulingError(c *gin.Context, err error) {
	var validationErr *scheduling.ValidationError
	var terminalErr *scheduling.TerminalStateError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, validationErr.Reason, validationErr.Field)
	case errors.Is(err, scheduling.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, "time slot unavailable", err.Error())
	case errors.As(err, &terminalErr):
		utils.JSONError(c, http.StatusConflict, "booking is in a terminal status", err.Error())
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "persistence failure", err.Error())
	}
}
