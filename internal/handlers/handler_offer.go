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

// offerHandler handles HTTP requests related to promotional offers.
type offerHandler struct {
	offerService portssvc.OfferSvcFacade
}

func newOfferHandler(os portssvc.OfferSvcFacade) *offerHandler {
	return &offerHandler{offerService: os}
}

// registerOfferRoutes registers the public storefront view and admin
// management routes for offers.
func registerOfferRoutes(public, admin *gin.RouterGroup, offerService portssvc.OfferSvcFacade) {
	h := newOfferHandler(offerService)

	public.GET("/offers", h.listCurrentOffers)

	adminOffers := admin.Group("/offers")
	{
		adminOffers.GET("/all", h.listAllOffers)
		adminOffers.GET("/:id", h.getOfferByID)
		adminOffers.POST("", h.createOffer)
		adminOffers.PUT("/:id", h.updateOffer)
		adminOffers.DELETE("/:id", h.deleteOffer)
	}
}

// listCurrentOffers godoc
// @Summary List current offers
// @Description Retrieves active offers whose date window contains the current time, ordered for display.
// @Tags offers
// @Produce json
// @Success 200 {array} dto.OfferResponse
// @Failure 500 {object} ErrorResponse
// @Router /offers [get]
func (h *offerHandler) listCurrentOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	offers, err := h.offerService.ListCurrentOffers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list current offers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOfferResponse(offers))
}

// listAllOffers godoc
// @Summary List all offers
// @Description Retrieves every offer regardless of state. Admin view.
// @Tags offers
// @Produce json
// @Success 200 {array} dto.OfferResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers/all [get]
func (h *offerHandler) listAllOffers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	offers, err := h.offerService.ListAllOffers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list offers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list offers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOfferResponse(offers))
}

// getOfferByID godoc
// @Summary Get an offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} dto.OfferResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers/{id} [get]
func (h *offerHandler) getOfferByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	offer, err := h.offerService.GetOfferByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Offer not found"})
			return
		}
		logger.Error("Failed to get offer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve offer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// createOffer godoc
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body dto.CreateOfferRequest true "Offer details"
// @Success 201 {object} dto.OfferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers [post]
func (h *offerHandler) createOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	offer, err := h.offerService.CreateOffer(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create offer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create offer"})
		return
	}

	logger.Info("Offer created", slog.String("offer_id", offer.OfferID))
	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

// updateOffer godoc
// @Summary Update an offer
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param offer body dto.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} dto.OfferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers/{id} [put]
func (h *offerHandler) updateOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	offer, err := h.offerService.UpdateOffer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Offer not found"})
			return
		}
		logger.Error("Failed to update offer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update offer"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// deleteOffer godoc
// @Summary Delete an offer
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /offers/{id} [delete]
func (h *offerHandler) deleteOffer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.offerService.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Offer not found"})
			return
		}
		logger.Error("Failed to delete offer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted"})
}
