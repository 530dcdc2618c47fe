package ports

import (
	"context"
	"time"

	"delegated-treasury/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Authorizer checks that the caller may act as a claimed identity.
type Authorizer interface {
	Require(ctx context.Context, id domain.Identity) error
}

// Clock supplies write timestamps.
type Clock interface {
	Now() time.Time
}

// AssetLedger moves asset balances inside the caller's ledger transaction.
type AssetLedger interface {
	Transfer(ctx context.Context, tx LedgerTx, asset string, from, to domain.Identity, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, r LedgerReader, asset string, holder domain.Identity) (decimal.Decimal, error)
}

// AssetService is the externally reachable side of the asset ledger.
type AssetService interface {
	Mint(ctx context.Context, asset string, to domain.Identity, amount decimal.Decimal) (decimal.Decimal, error)
	BalanceOf(ctx context.Context, asset string, holder domain.Identity) (decimal.Decimal, error)
}

// AuditAppender is the write path of an audit log.
type AuditAppender interface {
	// Append stores a record for subject and returns its sequence.
	Append(ctx context.Context, logID string, subjectID uint32, reference, note string) (uint32, error)
}

// AuditLogService manages append-only audit logs.
type AuditLogService interface {
	AuditAppender
	Initialize(ctx context.Context, logID string, admin domain.Identity) (*domain.AuditLog, error)
	Info(ctx context.Context, logID string) (*domain.AuditLog, error)
	SetWriter(ctx context.Context, logID string, writer domain.Identity) (*domain.AuditLog, error)
	TransferAdmin(ctx context.Context, logID string, newAdmin domain.Identity) (*domain.AuditLog, error)
	Count(ctx context.Context, logID string, subjectID uint32) (uint32, error)
	// Get returns nil when no record exists at seq.
	Get(ctx context.Context, logID string, subjectID, seq uint32) (*domain.AuditRecord, error)
	List(ctx context.Context, logID string, subjectID, start, limit uint32) ([]domain.AuditRecord, error)
}

// InitVaultRequest holds input for vault creation.
type InitVaultRequest struct {
	VaultID string
	Kind    domain.VaultKind
	Owner   domain.Identity
	Asset   string
}

// SpendRequest holds input for an algorithm spend.
type SpendRequest struct {
	VaultID   string
	AlgoID    uint32
	To        domain.Identity
	Amount    decimal.Decimal
	Reference string
	Note      string
}

// VaultService defines the treasury vault business logic.
type VaultService interface {
	Initialize(ctx context.Context, req InitVaultRequest) (*domain.Vault, error)
	Deposit(ctx context.Context, vaultID string, from domain.Identity, amount decimal.Decimal) (*domain.Vault, error)
	Withdraw(ctx context.Context, vaultID string, to domain.Identity, amount decimal.Decimal) (*domain.Vault, error)
	SetExecutor(ctx context.Context, vaultID string, executor domain.Identity) (*domain.Vault, error)
	ClearExecutor(ctx context.Context, vaultID string) (*domain.Vault, error)
	SetHistoryTarget(ctx context.Context, vaultID string, logID string) (*domain.Vault, error)
	SpendForAlgo(ctx context.Context, req SpendRequest) (*domain.SpendReceipt, error)
	TransferOwnership(ctx context.Context, vaultID string, newOwner domain.Identity) (*domain.Vault, error)
	SetPaused(ctx context.Context, vaultID string, paused bool) (*domain.Vault, error)
	Get(ctx context.Context, vaultID string) (*domain.Vault, error)
	Balance(ctx context.Context, vaultID string) (decimal.Decimal, error)
	Executor(ctx context.Context, vaultID string) (domain.Identity, error)
}

// VaultProvisioner creates a vault inside an existing ledger transaction.
// The caller is responsible for authorization.
type VaultProvisioner interface {
	Provision(ctx context.Context, tx LedgerTx, req InitVaultRequest) (*domain.Vault, error)
}

// CreateAlgorithmRequest holds input for registering an algorithm.
type CreateAlgorithmRequest struct {
	Owner       domain.Identity
	Name        string
	MetadataURI string
	ParamsHash  string
}

// UpdateAlgorithmRequest replaces an algorithm's descriptive fields.
type UpdateAlgorithmRequest struct {
	Name        string
	MetadataURI string
	ParamsHash  string
}

// RegistryService defines the algorithm registry.
type RegistryService interface {
	Initialize(ctx context.Context, admin domain.Identity) (*domain.RegistryInfo, error)
	Info(ctx context.Context) (*domain.RegistryInfo, error)
	TransferAdmin(ctx context.Context, newAdmin domain.Identity) (*domain.RegistryInfo, error)
	CreateAlgorithm(ctx context.Context, req CreateAlgorithmRequest) (*domain.Algorithm, error)
	SetActive(ctx context.Context, id uint32, active bool) (*domain.Algorithm, error)
	UpdateMetadata(ctx context.Context, id uint32, req UpdateAlgorithmRequest) (*domain.Algorithm, error)
	// GetAlgorithm returns nil when id was never assigned.
	GetAlgorithm(ctx context.Context, id uint32) (*domain.Algorithm, error)
	Total(ctx context.Context) (uint32, error)
}

// FactoryService provisions one creator vault per creator.
type FactoryService interface {
	Initialize(ctx context.Context, admin domain.Identity, asset string) (*domain.FactoryInfo, error)
	Info(ctx context.Context) (*domain.FactoryInfo, error)
	UpdateAdmin(ctx context.Context, newAdmin domain.Identity) (*domain.FactoryInfo, error)
	UpdateAsset(ctx context.Context, asset string) (*domain.FactoryInfo, error)
	CreateCreatorVault(ctx context.Context, creator domain.Identity) (*domain.Vault, error)
	GetCreatorVault(ctx context.Context, creator domain.Identity) (string, error)
	IsCreatorRegistered(ctx context.Context, creator domain.Identity) (bool, error)
	ListCreators(ctx context.Context, offset, limit uint32) ([]domain.Identity, uint32, error)
}

// EventPublisher delivers committed vault events. Delivery is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.VaultEvent)
}

// VaultMetrics records service-level outcomes.
type VaultMetrics interface {
	ObserveOperation(op string, err error)
	AuditAppendFailed(vaultID string)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject domain.Identity) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject   domain.Identity
	ExpiresAt time.Time
}

// SignatureService verifies request signatures made with identity keys.
type SignatureService interface {
	Verify(id domain.Identity, message string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}
