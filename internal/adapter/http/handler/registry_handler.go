package handler

import (
	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles /api/v1/registry endpoints.
type RegistryHandler struct {
	svc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(svc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{svc: svc}
}

// Initialize handles POST /api/v1/registry.
func (h *RegistryHandler) Initialize(c *gin.Context) {
	var req dto.InitRegistryRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.Initialize(c.Request.Context(), req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, info)
}

// Info handles GET /api/v1/registry.
func (h *RegistryHandler) Info(c *gin.Context) {
	info, err := h.svc.Info(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// TransferAdmin handles PUT /api/v1/registry/admin.
func (h *RegistryHandler) TransferAdmin(c *gin.Context) {
	var req dto.AdminRequest
	if !bindJSON(c, &req) {
		return
	}
	info, err := h.svc.TransferAdmin(c.Request.Context(), req.Admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, info)
}

// CreateAlgorithm handles POST /api/v1/registry/algos.
func (h *RegistryHandler) CreateAlgorithm(c *gin.Context) {
	var req dto.CreateAlgorithmRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	algo, err := h.svc.CreateAlgorithm(c.Request.Context(), ports.CreateAlgorithmRequest{
		Owner:       req.Owner,
		Name:        req.Name,
		MetadataURI: req.MetadataURI,
		ParamsHash:  req.ParamsHash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, algo)
}

// GetAlgorithm handles GET /api/v1/registry/algos/:id.
func (h *RegistryHandler) GetAlgorithm(c *gin.Context) {
	id, err := uint32Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	algo, err := h.svc.GetAlgorithm(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if algo == nil {
		response.Error(c, apperror.ErrNotFound("algorithm"))
		return
	}
	response.OK(c, algo)
}

// SetActive handles PUT /api/v1/registry/algos/:id/active.
func (h *RegistryHandler) SetActive(c *gin.Context) {
	id, err := uint32Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	algo, err := h.svc.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, algo)
}

// UpdateMetadata handles PUT /api/v1/registry/algos/:id/metadata.
func (h *RegistryHandler) UpdateMetadata(c *gin.Context) {
	id, err := uint32Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdateMetadataRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	algo, err := h.svc.UpdateMetadata(c.Request.Context(), id, ports.UpdateAlgorithmRequest{
		Name:        req.Name,
		MetadataURI: req.MetadataURI,
		ParamsHash:  req.ParamsHash,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, algo)
}
