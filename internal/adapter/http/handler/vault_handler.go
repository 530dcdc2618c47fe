package handler

import (
	"delegated-treasury/internal/adapter/http/dto"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler handles /api/v1/vaults endpoints.
type VaultHandler struct {
	svc ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(svc ports.VaultService) *VaultHandler {
	return &VaultHandler{svc: svc}
}

// Initialize handles POST /api/v1/vaults.
func (h *VaultHandler) Initialize(c *gin.Context) {
	var req dto.InitVaultRequest
	if !bindJSON(c, &req) {
		return
	}

	kind := domain.VaultKind(req.Kind)
	if kind == "" {
		kind = domain.VaultKindTreasury
	}

	v, err := h.svc.Initialize(c.Request.Context(), ports.InitVaultRequest{
		VaultID: req.VaultID,
		Kind:    kind,
		Owner:   req.Owner,
		Asset:   req.Asset,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, v)
}

// Get handles GET /api/v1/vaults/:id.
func (h *VaultHandler) Get(c *gin.Context) {
	v, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// Balance handles GET /api/v1/vaults/:id/balance.
func (h *VaultHandler) Balance(c *gin.Context) {
	v, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{VaultID: v.ID, Asset: v.Asset, Balance: v.Balance})
}

// Executor handles GET /api/v1/vaults/:id/executor.
func (h *VaultHandler) Executor(c *gin.Context) {
	vaultID := c.Param("id")
	executor, err := h.svc.Executor(c.Request.Context(), vaultID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExecutorResponse{VaultID: vaultID, Executor: executor})
}

// Deposit handles POST /api/v1/vaults/:id/deposit.
func (h *VaultHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.Deposit(c.Request.Context(), c.Param("id"), req.From, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// Withdraw handles POST /api/v1/vaults/:id/withdraw.
func (h *VaultHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.Withdraw(c.Request.Context(), c.Param("id"), req.To, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// SetExecutor handles PUT /api/v1/vaults/:id/executor.
func (h *VaultHandler) SetExecutor(c *gin.Context) {
	var req dto.SetExecutorRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.SetExecutor(c.Request.Context(), c.Param("id"), req.Executor)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// ClearExecutor handles DELETE /api/v1/vaults/:id/executor.
func (h *VaultHandler) ClearExecutor(c *gin.Context) {
	v, err := h.svc.ClearExecutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// SetHistoryTarget handles PUT /api/v1/vaults/:id/history-target.
func (h *VaultHandler) SetHistoryTarget(c *gin.Context) {
	var req dto.SetHistoryTargetRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.SetHistoryTarget(c.Request.Context(), c.Param("id"), req.LogID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// Spend handles POST /api/v1/vaults/:id/spend. A 200 means the funds moved;
// the receipt reports whether the audit record was written.
func (h *VaultHandler) Spend(c *gin.Context) {
	var req dto.SpendRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)

	receipt, err := h.svc.SpendForAlgo(c.Request.Context(), ports.SpendRequest{
		VaultID:   c.Param("id"),
		AlgoID:    req.AlgoID,
		To:        req.To,
		Amount:    req.Amount,
		Reference: req.Reference,
		Note:      req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, receipt)
}

// TransferOwnership handles PUT /api/v1/vaults/:id/owner.
func (h *VaultHandler) TransferOwnership(c *gin.Context) {
	var req dto.TransferOwnershipRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.TransferOwnership(c.Request.Context(), c.Param("id"), req.NewOwner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}

// SetPaused handles PUT /api/v1/vaults/:id/paused.
func (h *VaultHandler) SetPaused(c *gin.Context) {
	var req dto.SetPausedRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.svc.SetPaused(c.Request.Context(), c.Param("id"), *req.Paused)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, v)
}
