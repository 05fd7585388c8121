package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type depreciationHandler struct {
	depreciationService portssvc.DepreciationSvcFacade
}

func registerDepreciationRoutes(rg, assets *gin.RouterGroup, depreciationService portssvc.DepreciationSvcFacade) {
	h := &depreciationHandler{depreciationService: depreciationService}

	assets.POST("/:assetID/depreciations", h.createCalculation)
	assets.GET("/:assetID/depreciations", h.listCalculations)

	depreciations := rg.Group("/depreciations")
	{
		depreciations.POST("/preview", h.preview)
		depreciations.GET("/:calculationID", h.getCalculation)
		depreciations.DELETE("/:calculationID", h.deleteCalculation)
	}
}

// preview godoc
// @Summary Preview a depreciation schedule
// @Description Computes a straight-line schedule without saving it. assetValue and startDate are required.
// @Tags depreciations
// @Accept json
// @Produce json
// @Param request body dto.DepreciationRequest true "Calculation parameters"
// @Success 200 {object} domain.DepreciationCalculation
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Category not found"
// @Router /depreciations/preview [post]
func (h *depreciationHandler) preview(c *gin.Context) {
	var req dto.DepreciationRequest
	if !bindJSON(c, &req) {
		return
	}
	calc, err := h.depreciationService.PreviewDepreciation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to compute depreciation")
		return
	}
	c.JSON(http.StatusOK, calc)
}

// createCalculation godoc
// @Summary Calculate and save depreciation for an asset
// @Description The new schedule supersedes the asset's earlier ones.
// @Tags depreciations
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param request body dto.DepreciationRequest true "Calculation parameters"
// @Success 201 {object} domain.DepreciationCalculation
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Router /assets/{assetID}/depreciations [post]
func (h *depreciationHandler) createCalculation(c *gin.Context) {
	var req dto.DepreciationRequest
	if !bindJSON(c, &req) {
		return
	}
	calc, err := h.depreciationService.CreateDepreciationCalculation(c.Request.Context(), c.Param("assetID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to save depreciation calculation")
		return
	}
	c.JSON(http.StatusCreated, calc)
}

// listCalculations godoc
// @Summary List an asset's depreciation calculations
// @Description Superseded calculations are included and flagged.
// @Tags depreciations
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.ListDepreciationCalculationsResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/depreciations [get]
func (h *depreciationHandler) listCalculations(c *gin.Context) {
	calcs, err := h.depreciationService.ListDepreciationCalculations(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err, "Failed to list depreciation calculations")
		return
	}
	c.JSON(http.StatusOK, dto.ListDepreciationCalculationsResponse{Calculations: calcs})
}

// getCalculation godoc
// @Summary Get a saved depreciation calculation
// @Tags depreciations
// @Produce json
// @Param calculationID path string true "Calculation ID"
// @Success 200 {object} domain.DepreciationCalculation
// @Failure 404 {object} map[string]string "Calculation not found"
// @Router /depreciations/{calculationID} [get]
func (h *depreciationHandler) getCalculation(c *gin.Context) {
	calc, err := h.depreciationService.GetDepreciationCalculation(c.Request.Context(), c.Param("calculationID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve depreciation calculation")
		return
	}
	c.JSON(http.StatusOK, calc)
}

// deleteCalculation godoc
// @Summary Delete a saved depreciation calculation
// @Tags depreciations
// @Param calculationID path string true "Calculation ID"
// @Param X-User-ID header string false "Audit user"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Router /depreciations/{calculationID} [delete]
func (h *depreciationHandler) deleteCalculation(c *gin.Context) {
	if err := h.depreciationService.DeleteDepreciationCalculation(c.Request.Context(), c.Param("calculationID"), middleware.GetUserIDFromContext(c)); err != nil {
		respondError(c, err, "Failed to delete depreciation calculation")
		return
	}
	c.Status(http.StatusNoContent)
}
