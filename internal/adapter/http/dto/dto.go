package dto

import (
	"delegated-treasury/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Amounts are accepted as JSON numbers or strings. Range and integrality
// are checked by the services, not by binding tags.

// TokenResponse is returned by POST /api/v1/auth/token.
type TokenResponse struct {
	Token    string          `json:"token"`
	Identity domain.Identity `json:"identity"`
	Expiry   int64           `json:"expiry"` // Unix timestamp
}

// ---- Vaults ----

// InitVaultRequest is the request body for vault initialization.
type InitVaultRequest struct {
	VaultID string          `json:"vault_id" binding:"required,max=64,safe_id"`
	Kind    string          `json:"kind" binding:"omitempty,oneof=TREASURY CREATOR"`
	Owner   domain.Identity `json:"owner" binding:"required,identity"`
	Asset   string          `json:"asset" binding:"required,max=32,safe_id"`
}

// DepositRequest moves funds from a holder into the vault.
type DepositRequest struct {
	From   domain.Identity `json:"from" binding:"required,identity"`
	Amount decimal.Decimal `json:"amount"`
}

// WithdrawRequest moves funds from the vault to a recipient. Owner only.
type WithdrawRequest struct {
	To     domain.Identity `json:"to" binding:"required,identity"`
	Amount decimal.Decimal `json:"amount"`
}

type SetExecutorRequest struct {
	Executor domain.Identity `json:"executor" binding:"required,identity"`
}

type SetHistoryTargetRequest struct {
	LogID string `json:"log_id" binding:"required,max=64,safe_id"`
}

// SpendRequest is the request body for an algorithm spend.
type SpendRequest struct {
	AlgoID    uint32          `json:"algo_id"`
	To        domain.Identity `json:"to" binding:"required,identity"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference" binding:"max=256"`
	Note      string          `json:"note" binding:"max=1024"`
}

type TransferOwnershipRequest struct {
	NewOwner domain.Identity `json:"new_owner" binding:"required,identity"`
}

type SetPausedRequest struct {
	Paused *bool `json:"paused" binding:"required"`
}

// BalanceResponse is the response for a vault balance query.
type BalanceResponse struct {
	VaultID string          `json:"vault_id"`
	Asset   string          `json:"asset"`
	Balance decimal.Decimal `json:"balance"`
}

type ExecutorResponse struct {
	VaultID  string          `json:"vault_id"`
	Executor domain.Identity `json:"executor"`
}

// ---- Audit logs ----

type InitAuditLogRequest struct {
	LogID string          `json:"log_id" binding:"required,max=64,safe_id"`
	Admin domain.Identity `json:"admin" binding:"required,identity"`
}

type SetWriterRequest struct {
	Writer domain.Identity `json:"writer" binding:"required,identity"`
}

// AdminRequest names the next admin of an audit log, the registry or the factory.
type AdminRequest struct {
	Admin domain.Identity `json:"admin" binding:"required,identity"`
}

type AppendRecordRequest struct {
	Reference string `json:"reference" binding:"max=256"`
	Note      string `json:"note" binding:"max=1024"`
}

type AppendRecordResponse struct {
	LogID     string `json:"log_id"`
	SubjectID uint32 `json:"subject_id"`
	Sequence  uint32 `json:"sequence"`
}

type CountResponse struct {
	LogID     string `json:"log_id"`
	SubjectID uint32 `json:"subject_id"`
	Count     uint32 `json:"count"`
}

// ---- Registry ----

type InitRegistryRequest struct {
	Admin domain.Identity `json:"admin" binding:"required,identity"`
}

type CreateAlgorithmRequest struct {
	Owner       domain.Identity `json:"owner" binding:"required,identity"`
	Name        string          `json:"name" binding:"required,max=100"`
	MetadataURI string          `json:"metadata_uri" binding:"max=512"`
	ParamsHash  string          `json:"params_hash" binding:"max=128"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type UpdateMetadataRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	MetadataURI string `json:"metadata_uri" binding:"max=512"`
	ParamsHash  string `json:"params_hash" binding:"max=128"`
}

// ---- Factory ----

type InitFactoryRequest struct {
	Admin domain.Identity `json:"admin" binding:"required,identity"`
	Asset string          `json:"asset" binding:"required,max=32,safe_id"`
}

type UpdateAssetRequest struct {
	Asset string `json:"asset" binding:"required,max=32,safe_id"`
}

type CreateCreatorVaultRequest struct {
	Creator domain.Identity `json:"creator" binding:"required,identity"`
}

type CreatorVaultResponse struct {
	Creator domain.Identity `json:"creator"`
	VaultID string          `json:"vault_id"`
}

// ---- Assets ----

type MintRequest struct {
	To     domain.Identity `json:"to" binding:"required,identity"`
	Amount decimal.Decimal `json:"amount"`
}

type AssetBalanceResponse struct {
	Asset   string          `json:"asset"`
	Holder  domain.Identity `json:"holder"`
	Balance decimal.Decimal `json:"balance"`
}
