package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// disposalHandler handles sales and write-offs.
type disposalHandler struct {
	disposalService portssvc.DisposalSvcFacade
}

func registerDisposalRoutes(rg, assets *gin.RouterGroup, disposalService portssvc.DisposalSvcFacade) {
	h := &disposalHandler{disposalService: disposalService}

	assets.POST("/:assetID/disposals", h.registerDisposal)
	assets.GET("/:assetID/disposals", h.listDisposals)
	assets.POST("/:assetID/disposals/preview", h.previewDisposal)

	disposals := rg.Group("/disposals")
	{
		disposals.GET("/:disposalID", h.getDisposal)
		disposals.DELETE("/:disposalID", h.deleteDisposal)
	}
}

// previewDisposal godoc
// @Summary Preview a disposal settlement
// @Description Reconstructs credits and depreciation up to the sale date without recording anything.
// @Tags disposals
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param request body dto.DisposalRequest true "Disposal details"
// @Success 200 {object} domain.Settlement
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already written off"
// @Router /assets/{assetID}/disposals/preview [post]
func (h *disposalHandler) previewDisposal(c *gin.Context) {
	var req dto.DisposalRequest
	if !bindJSON(c, &req) {
		return
	}
	settlement, err := h.disposalService.PreviewDisposal(c.Request.Context(), c.Param("assetID"), req)
	if err != nil {
		respondError(c, err, "Failed to compute settlement")
		return
	}
	c.JSON(http.StatusOK, settlement)
}

// registerDisposal godoc
// @Summary Register a sale or write-off
// @Description Records the disposal with its settlement snapshot and writes the asset off.
// @Tags disposals
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param request body dto.DisposalRequest true "Disposal details"
// @Success 201 {object} domain.DisposalRecord
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset already disposed of"
// @Router /assets/{assetID}/disposals [post]
func (h *disposalHandler) registerDisposal(c *gin.Context) {
	var req dto.DisposalRequest
	if !bindJSON(c, &req) {
		return
	}
	assetID := c.Param("assetID")
	record, err := h.disposalService.RegisterDisposal(c.Request.Context(), assetID, req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to register disposal")
		return
	}
	if len(record.Settlement.Warnings) > 0 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Disposal registered with warnings",
			slog.String("asset_id", assetID), slog.Int("warnings", len(record.Settlement.Warnings)))
	}
	c.JSON(http.StatusCreated, record)
}

// listDisposals godoc
// @Summary List an asset's disposals
// @Tags disposals
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.ListDisposalsResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/disposals [get]
func (h *disposalHandler) listDisposals(c *gin.Context) {
	records, err := h.disposalService.ListDisposals(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err, "Failed to list disposals")
		return
	}
	c.JSON(http.StatusOK, dto.ListDisposalsResponse{Disposals: records})
}

// getDisposal godoc
// @Summary Get a disposal record
// @Tags disposals
// @Produce json
// @Param disposalID path string true "Disposal ID"
// @Success 200 {object} domain.DisposalRecord
// @Failure 404 {object} map[string]string "Disposal not found"
// @Router /disposals/{disposalID} [get]
func (h *disposalHandler) getDisposal(c *gin.Context) {
	record, err := h.disposalService.GetDisposal(c.Request.Context(), c.Param("disposalID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve disposal")
		return
	}
	c.JSON(http.StatusOK, record)
}

// deleteDisposal godoc
// @Summary Delete a disposal
// @Description Removes the record and reverts the asset to its status before the disposal.
// @Tags disposals
// @Param disposalID path string true "Disposal ID"
// @Param X-User-ID header string false "Audit user"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Disposal not found"
// @Router /disposals/{disposalID} [delete]
func (h *disposalHandler) deleteDisposal(c *gin.Context) {
	if err := h.disposalService.DeleteDisposal(c.Request.Context(), c.Param("disposalID"), middleware.GetUserIDFromContext(c)); err != nil {
		respondError(c, err, "Failed to delete disposal")
		return
	}
	c.Status(http.StatusNoContent)
}
