package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gigbook/models"
	"gigbook/services/draft"
	"gigbook/utils"
)

// DraftHandler persists and recalls in-progress intake forms by session.
type DraftHandler struct {
	Store  draft.Store
	Logger *zap.Logger
}

func NewDraftHandler(store draft.Store, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{Store: store, Logger: logger}
}

func (h *DraftHandler) SaveDraftHandler(c *gin.Context) {
	var d models.BookingDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Store.Save(c.Request.Context(), c.Param("sessionID"), d); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *DraftHandler) GetDraftHandler(c *gin.Context) {
	d, err := h.Store.Load(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if err == draft.ErrDraftNotFound {
			utils.JSONError(c, http.StatusNotFound, "draft not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DraftHandler) DeleteDraftHandler(c *gin.Context) {
	if err := h.Store.Delete(c.Request.Context(), c.Param("sessionID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete draft", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
