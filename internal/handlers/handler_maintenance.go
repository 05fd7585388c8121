package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

func registerMaintenanceRoutes(assets *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := &maintenanceHandler{maintenanceService: maintenanceService}

	assets.POST("/:assetID/maintenance", h.startMaintenance)
	assets.GET("/:assetID/maintenance", h.listMaintenance)
	assets.POST("/:assetID/maintenance/:maintenanceID/complete", h.completeMaintenance)
}

// startMaintenance godoc
// @Summary Start a maintenance
// @Description Opens a maintenance record and moves the asset to UNDER_MAINTENANCE
// @Tags maintenance
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param maintenance body dto.StartMaintenanceRequest true "Maintenance details"
// @Success 201 {object} domain.MaintenanceRecord
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset written off or already under maintenance"
// @Router /assets/{assetID}/maintenance [post]
func (h *maintenanceHandler) startMaintenance(c *gin.Context) {
	var req dto.StartMaintenanceRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.maintenanceService.StartMaintenance(c.Request.Context(), c.Param("assetID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to start maintenance")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// completeMaintenance godoc
// @Summary Complete a maintenance
// @Description Closes the record and restores the asset's previous status
// @Tags maintenance
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param maintenanceID path string true "Maintenance ID"
// @Param X-User-ID header string false "Audit user"
// @Param completion body dto.CompleteMaintenanceRequest false "Completion details"
// @Success 200 {object} domain.MaintenanceRecord
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Maintenance not found"
// @Failure 409 {object} map[string]string "Maintenance already completed"
// @Router /assets/{assetID}/maintenance/{maintenanceID}/complete [post]
func (h *maintenanceHandler) completeMaintenance(c *gin.Context) {
	var req dto.CompleteMaintenanceRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}
	record, err := h.maintenanceService.CompleteMaintenance(c.Request.Context(),
		c.Param("assetID"), c.Param("maintenanceID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to complete maintenance")
		return
	}
	c.JSON(http.StatusOK, record)
}

// listMaintenance godoc
// @Summary List an asset's maintenance history
// @Tags maintenance
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.ListMaintenanceResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /assets/{assetID}/maintenance [get]
func (h *maintenanceHandler) listMaintenance(c *gin.Context) {
	records, err := h.maintenanceService.ListMaintenance(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err, "Failed to list maintenance")
		return
	}
	c.JSON(http.StatusOK, dto.ListMaintenanceResponse{Records: records})
}
