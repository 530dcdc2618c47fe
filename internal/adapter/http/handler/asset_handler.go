package handler

import (
	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// AssetHandler handles /api/v1/assets endpoints.
type AssetHandler struct {
	svc ports.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(svc ports.AssetService) *AssetHandler {
	return &AssetHandler{svc: svc}
}

// Mint handles POST /api/v1/assets/:asset/mint. Platform admin only.
func (h *AssetHandler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if !bindJSON(c, &req) {
		return
	}
	asset := c.Param("asset")
	balance, err := h.svc.Mint(c.Request.Context(), asset, req.To, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AssetBalanceResponse{Asset: asset, Holder: req.To, Balance: balance})
}

// BalanceOf handles GET /api/v1/assets/:asset/balances/:holder.
func (h *AssetHandler) BalanceOf(c *gin.Context) {
	holder, err := identityParam(c, "holder")
	if err != nil {
		response.Error(c, err)
		return
	}
	asset := c.Param("asset")
	if asset == "" {
		response.Error(c, apperror.Validation("asset is required"))
		return
	}
	balance, err := h.svc.BalanceOf(c.Request.Context(), asset, holder)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.AssetBalanceResponse{Asset: asset, Holder: holder, Balance: balance})
}
