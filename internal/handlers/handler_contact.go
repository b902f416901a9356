package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/apperrors"
	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contactHandler handles the public contact form and the admin inbox.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers the public submission endpoint and the
// admin inbox routes.
func registerContactRoutes(public, admin *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	public.POST("/contact", h.submitMessage)

	inbox := admin.Group("/contact")
	{
		inbox.GET("", h.listMessages)
		inbox.GET("/:id", h.getMessageByID)
		inbox.PATCH("/:id/read", h.markMessageRead)
		inbox.DELETE("/:id", h.deleteMessage)
	}
}

// submitMessage godoc
// @Summary Submit a contact message
// @Description Stores a message from the public contact form.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.CreateContactMessageRequest true "Message details"
// @Success 201 {object} dto.ContactMessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [post]
func (h *contactHandler) submitMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	msg, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to store contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit message"})
		return
	}

	logger.Info("Contact message received", slog.String("message_id", msg.MessageID))
	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(msg))
}

// listMessages godoc
// @Summary List contact messages
// @Description Retrieves a page of inbox messages, newest first.
// @Tags contact
// @Produce json
// @Param unread_only query bool false "Only unread messages"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListContactMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	msgs, total, err := h.contactService.ListMessages(c.Request.Context(), params.UnreadOnly, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list contact messages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToListContactMessageResponse(msgs),
		"total":    total,
		"limit":    params.Limit,
		"offset":   params.Offset,
	})
}

// getMessageByID godoc
// @Summary Get a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.ContactMessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact/{id} [get]
func (h *contactHandler) getMessageByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	msg, err := h.contactService.GetMessageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
			return
		}
		logger.Error("Failed to get contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve message"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactMessageResponse(msg))
}

// markMessageRead godoc
// @Summary Mark a contact message as read
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.ContactMessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact/{id}/read [patch]
func (h *contactHandler) markMessageRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	msg, err := h.contactService.MarkMessageRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
			return
		}
		logger.Error("Failed to mark message read", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContactMessageResponse(msg))
}

// deleteMessage godoc
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /contact/{id} [delete]
func (h *contactHandler) deleteMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.contactService.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Message not found"})
			return
		}
		logger.Error("Failed to delete contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
