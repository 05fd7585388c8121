package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxCreditHandler serves tax credit schedules.
type taxCreditHandler struct {
	taxCreditService portssvc.TaxCreditSvcFacade
}

func registerTaxCreditRoutes(rg, assets *gin.RouterGroup, taxCreditService portssvc.TaxCreditSvcFacade) {
	h := &taxCreditHandler{taxCreditService: taxCreditService}

	assets.POST("/:assetID/tax-credits", h.createCalculation)
	assets.GET("/:assetID/tax-credits", h.listCalculations)

	credits := rg.Group("/tax-credits")
	{
		credits.POST("/preview", h.preview)
		credits.GET("/:calculationID", h.getCalculation)
		credits.PUT("/:calculationID", h.updateCalculation)
		credits.DELETE("/:calculationID", h.deleteCalculation)
	}
}

// preview godoc
// @Summary Preview tax credit schedules
// @Description Computes per-tax credit schedules without saving them. baseValue and startDate are required.
// @Tags tax-credits
// @Accept json
// @Produce json
// @Param request body dto.TaxCreditRequest true "Calculation parameters"
// @Success 200 {object} domain.TaxCreditCalculation
// @Failure 400 {object} map[string]string "Validation error"
// @Router /tax-credits/preview [post]
func (h *taxCreditHandler) preview(c *gin.Context) {
	var req dto.TaxCreditRequest
	if !bindJSON(c, &req) {
		return
	}
	calc, err := h.taxCreditService.PreviewTaxCredits(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to compute tax credits")
		return
	}
	c.JSON(http.StatusOK, calc)
}

// createCalculation godoc
// @Summary Calculate and save tax credits for an asset
// @Description baseValue and startDate default to the asset's total value and acquisition date.
// @Tags tax-credits
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param request body dto.TaxCreditRequest true "Calculation parameters"
// @Success 201 {object} domain.TaxCreditCalculation
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Router /assets/{assetID}/tax-credits [post]
func (h *taxCreditHandler) createCalculation(c *gin.Context) {
	var req dto.TaxCreditRequest
	if !bindJSON(c, &req) {
		return
	}
	assetID := c.Param("assetID")
	calc, err := h.taxCreditService.CreateTaxCreditCalculation(c.Request.Context(), assetID, req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to save tax credit calculation")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Tax credit calculation saved",
		slog.String("asset_id", assetID), slog.String("calculation_id", calc.CalculationID))
	c.JSON(http.StatusCreated, calc)
}

// listCalculations godoc
// @Summary List an asset's tax credit calculations
// @Tags tax-credits
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.ListTaxCreditCalculationsResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/tax-credits [get]
func (h *taxCreditHandler) listCalculations(c *gin.Context) {
	calcs, err := h.taxCreditService.ListTaxCreditCalculations(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err, "Failed to list tax credit calculations")
		return
	}
	c.JSON(http.StatusOK, dto.ListTaxCreditCalculationsResponse{Calculations: calcs})
}

// getCalculation godoc
// @Summary Get a saved tax credit calculation
// @Tags tax-credits
// @Produce json
// @Param calculationID path string true "Calculation ID"
// @Success 200 {object} domain.TaxCreditCalculation
// @Failure 404 {object} map[string]string "Calculation not found"
// @Router /tax-credits/{calculationID} [get]
func (h *taxCreditHandler) getCalculation(c *gin.Context) {
	calc, err := h.taxCreditService.GetTaxCreditCalculation(c.Request.Context(), c.Param("calculationID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve tax credit calculation")
		return
	}
	c.JSON(http.StatusOK, calc)
}

// updateCalculation godoc
// @Summary Recompute a saved tax credit calculation
// @Tags tax-credits
// @Accept json
// @Produce json
// @Param calculationID path string true "Calculation ID"
// @Param X-User-ID header string false "Audit user"
// @Param request body dto.TaxCreditRequest true "Calculation parameters"
// @Success 200 {object} domain.TaxCreditCalculation
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Router /tax-credits/{calculationID} [put]
func (h *taxCreditHandler) updateCalculation(c *gin.Context) {
	var req dto.TaxCreditRequest
	if !bindJSON(c, &req) {
		return
	}
	calc, err := h.taxCreditService.UpdateTaxCreditCalculation(c.Request.Context(), c.Param("calculationID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to update tax credit calculation")
		return
	}
	c.JSON(http.StatusOK, calc)
}

// deleteCalculation godoc
// @Summary Delete a saved tax credit calculation
// @Tags tax-credits
// @Param calculationID path string true "Calculation ID"
// @Param X-User-ID header string false "Audit user"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Router /tax-credits/{calculationID} [delete]
func (h *taxCreditHandler) deleteCalculation(c *gin.Context) {
	if err := h.taxCreditService.DeleteTaxCreditCalculation(c.Request.Context(), c.Param("calculationID"), middleware.GetUserIDFromContext(c)); err != nil {
		respondError(c, err, "Failed to delete tax credit calculation")
		return
	}
	c.Status(http.StatusNoContent)
}
