package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fixed_asset_ledger/internal/core/ports/services"
	"github.com/SscSPs/fixed_asset_ledger/internal/dto"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to the asset register.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{assetService: as}
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:assetID", h.getAsset)
		assets.PUT("/:assetID", h.updateAsset)
		assets.DELETE("/:assetID", h.deleteAsset)
		assets.POST("/:assetID/reassess", h.reassessAsset)
	}
}

// createAsset godoc
// @Summary Register a new asset
// @Description Registers a fixed asset with its acquisition value, taxes and category
// @Tags assets
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Audit user"
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Asset code already registered"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	userID := middleware.GetUserIDFromContext(c)
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))
	logger.Info("Received request to create asset", slog.String("code", req.Code))

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create asset")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List assets
// @Description Lists registered assets ordered by code
// @Tags assets
// @Produce json
// @Param status query string false "Filter by status" Enums(ACTIVE, UNDER_MAINTENANCE, WRITTEN_OFF)
// @Param categoryID query string false "Filter by category"
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	var params dto.ListAssetsParams
	if !bindQuery(c, &params) {
		return
	}
	assets, err := h.assetService.ListAssets(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce json
// @Param assetID path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Router /assets/{assetID} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("assetID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Updates descriptive fields of an asset. The acquisition value cannot change.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Failure 500 {object} map[string]string "Failed to update asset"
// @Router /assets/{assetID} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.assetService.UpdateAsset(c.Request.Context(), c.Param("assetID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to update asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// reassessAsset godoc
// @Summary Reassess an asset
// @Description Records a new market value. The fiscal acquisition value is kept.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Param reassessment body dto.ReassessAssetRequest true "New market value"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset is written off"
// @Failure 500 {object} map[string]string "Failed to reassess asset"
// @Router /assets/{assetID}/reassess [post]
func (h *assetHandler) reassessAsset(c *gin.Context) {
	var req dto.ReassessAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	asset, err := h.assetService.ReassessAsset(c.Request.Context(), c.Param("assetID"), req, middleware.GetUserIDFromContext(c))
	if err != nil {
		respondError(c, err, "Failed to reassess asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// deleteAsset godoc
// @Summary Delete an asset
// @Description Deletes an asset that has no calculations, maintenance or disposal
// @Tags assets
// @Param assetID path string true "Asset ID"
// @Param X-User-ID header string false "Audit user"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Asset has dependent records"
// @Failure 500 {object} map[string]string "Failed to delete asset"
// @Router /assets/{assetID} [delete]
func (h *assetHandler) deleteAsset(c *gin.Context) {
	if err := h.assetService.DeleteAsset(c.Request.Context(), c.Param("assetID"), middleware.GetUserIDFromContext(c)); err != nil {
		respondError(c, err, "Failed to delete asset")
		return
	}
	c.Status(http.StatusNoContent)
}
