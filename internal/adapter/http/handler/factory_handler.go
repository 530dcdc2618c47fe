package handler

import (
	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// FactoryHandler handles /api/v1/factory endpoints.
type FactoryHandler struct {
	svc ports.FactoryService
}

// NewFactoryHandler creates a new FactoryHandler.
func NewFactoryHandler(svc ports.FactoryService) *FactoryHandler {
	return &FactoryHandler{svc: svc}
}

// Initialize handles POST /api/v1/factory.
func (h *FactoryHandler) Initialize(c *gin.Context) {
	var req dto.InitFactoryRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.Initialize(c.Request.Context(), req.Admin, req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, info)
}

// Info handles GET /api/v1/factory.
func (h *FactoryHandler) Info(c *gin.Context) {
	info, err := h.svc.Info(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// UpdateAdmin handles PUT /api/v1/factory/admin.
func (h *FactoryHandler) UpdateAdmin(c *gin.Context) {
	var req dto.AdminRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.UpdateAdmin(c.Request.Context(), req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// UpdateAsset handles PUT /api/v1/factory/asset.
func (h *FactoryHandler) UpdateAsset(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.UpdateAsset(c.Request.Context(), req.Asset)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// CreateCreatorVault handles POST /api/v1/factory/vaults.
func (h *FactoryHandler) CreateCreatorVault(c *gin.Context) {
	var req dto.CreateCreatorVaultRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.CreateCreatorVault(c.Request.Context(), req.Creator)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, v)
}

// GetCreatorVault handles GET /api/v1/factory/vaults/:creator.
func (h *FactoryHandler) GetCreatorVault(c *gin.Context) {
	creator, err := identityParam(c, "creator")
	if err != nil {
		response.Error(c, err)
		return
	}
	vaultID, err := h.svc.GetCreatorVault(c.Request.Context(), creator)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CreatorVaultResponse{Creator: creator, VaultID: vaultID})
}

// ListCreators handles GET /api/v1/factory/creators?offset=&limit=.
func (h *FactoryHandler) ListCreators(c *gin.Context) {
	offset, limit, err := pageQuery(c, "offset")
	if err != nil {
		response.Error(c, err)
		return
	}
	creators, total, err := h.svc.ListCreators(c.Request.Context(), offset, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, creators, offset, limit, total)
}
