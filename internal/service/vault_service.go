package service

import (
	"context"
	"fmt"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Vault field names under vault/<id>/.
const (
	fieldKind     = "kind"
	fieldAddress  = "address"
	fieldOwner    = "owner"
	fieldAsset    = "asset"
	fieldBalance  = "balance"
	fieldExecutor = "executor"
	fieldHistory  = "history"
	fieldPaused   = "paused"
)

// VaultServiceImpl implements ports.VaultService and ports.VaultProvisioner.
// Treasury and creator vaults share this state machine; the vault's kind
// decides whether the audit link or the pause switch applies.
type VaultServiceImpl struct {
	store   ports.LedgerStore
	assets  ports.AssetLedger
	auth    ports.Authorizer
	audit   ports.AuditAppender
	events  ports.EventPublisher
	metrics ports.VaultMetrics
	log     zerolog.Logger
}

// NewVaultService creates a new VaultServiceImpl. events and metrics may be nil.
func NewVaultService(
	store ports.LedgerStore,
	assets ports.AssetLedger,
	auth ports.Authorizer,
	audit ports.AuditAppender,
	events ports.EventPublisher,
	metrics ports.VaultMetrics,
	log zerolog.Logger,
) *VaultServiceImpl {
	if events == nil {
		events = NopPublisher{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &VaultServiceImpl{
		store:   store,
		assets:  assets,
		auth:    auth,
		audit:   audit,
		events:  events,
		metrics: metrics,
		log:     log,
	}
}

// Initialize creates a vault owned by req.Owner. The owner must authorize.
// Ids in the factory's reserved namespace are refused here; only Provision
// may create them.
func (s *VaultServiceImpl) Initialize(ctx context.Context, req ports.InitVaultRequest) (*domain.Vault, error) {
	var v *domain.Vault
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		if err := validateInit(req); err != nil {
			return err
		}
		if domain.IsReservedVaultID(req.VaultID) {
			return apperror.Validation(fmt.Sprintf("vault ids starting with %q are assigned by the factory", domain.CreatorVaultIDPrefix))
		}
		exists, err := tx.Has(ctx, domain.VaultKey(req.VaultID, fieldKind))
		if err != nil {
			return fmt.Errorf("check vault: %w", err)
		}
		if exists {
			return apperror.ErrAlreadyInitialized("vault")
		}
		if err := s.auth.Require(ctx, req.Owner); err != nil {
			return err
		}
		v, err = s.Provision(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.observe("initialize", err)
	}
	s.metrics.ObserveOperation("initialize", nil)

	s.log.Info().
		Str("vault_id", v.ID).
		Str("kind", string(v.Kind)).
		Str("owner", v.Owner.String()).
		Str("asset", v.Asset).
		Msg("vault initialized")
	s.events.Publish(ctx, domain.NewVaultEvent(domain.VaultEventInitialized, v, v.Owner))

	return v, nil
}

// Provision writes a fresh vault inside tx without checking authorization.
func (s *VaultServiceImpl) Provision(ctx context.Context, tx ports.LedgerTx, req ports.InitVaultRequest) (*domain.Vault, error) {
	if err := validateInit(req); err != nil {
		return nil, err
	}
	exists, err := tx.Has(ctx, domain.VaultKey(req.VaultID, fieldKind))
	if err != nil {
		return nil, fmt.Errorf("check vault: %w", err)
	}
	if exists {
		return nil, apperror.ErrAlreadyInitialized("vault")
	}

	addr, err := domain.VaultAddress(req.Kind, req.VaultID)
	if err != nil {
		return nil, fmt.Errorf("derive vault address: %w", err)
	}

	v := &domain.Vault{
		ID:      req.VaultID,
		Kind:    req.Kind,
		Address: addr,
		Owner:   req.Owner,
		Asset:   req.Asset,
		Balance: decimal.Zero,
	}
	if err := saveVault(ctx, tx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func validateInit(req ports.InitVaultRequest) error {
	switch {
	case req.VaultID == "":
		return apperror.Validation("vault id is required")
	case !req.Kind.Valid():
		return apperror.Validation("unknown vault kind")
	case req.Owner.IsZero():
		return apperror.Validation("owner is required")
	case req.Asset == "":
		return apperror.Validation("asset is required")
	}
	return nil
}

// Deposit moves amount of the vault's asset from `from` into the vault.
// Check order: amount, pause switch, depositor authorization, depositor funds.
func (s *VaultServiceImpl) Deposit(ctx context.Context, vaultID string, from domain.Identity, amount decimal.Decimal) (*domain.Vault, error) {
	if !domain.IsPositiveAmount(amount) {
		return nil, s.observe("deposit", apperror.ErrInvalidAmount())
	}

	v, err := s.mutate(ctx, vaultID, func(tx ports.LedgerTx, v *domain.Vault) error {
		if v.Kind.Capabilities().PauseSwitch && v.Paused {
			return apperror.ErrPaused()
		}
		if err := s.auth.Require(ctx, from); err != nil {
			return err
		}
		newBalance, err := domain.CheckedAdd(v.Balance, amount)
		if err != nil {
			return apperror.ErrInvalidAmount()
		}
		if err := s.assets.Transfer(ctx, tx, v.Asset, from, v.Address, amount); err != nil {
			return err
		}
		v.Balance = newBalance
		return nil
	})
	if err != nil {
		return nil, s.observe("deposit", err)
	}
	s.metrics.ObserveOperation("deposit", nil)

	s.log.Info().
		Str("vault_id", v.ID).
		Str("from", from.String()).
		Str("amount", amount.String()).
		Str("balance", v.Balance.String()).
		Msg("deposit recorded")

	ev := domain.NewVaultEvent(domain.VaultEventDeposit, v, from)
	ev.Counterparty = from
	ev.Amount = &amount
	s.events.Publish(ctx, ev)

	return v, nil
}

// Withdraw sends amount to `to`. Owner only; not gated by the pause switch.
func (s *VaultServiceImpl) Withdraw(ctx context.Context, vaultID string, to domain.Identity, amount decimal.Decimal) (*domain.Vault, error) {
	var owner domain.Identity
	v, err := s.mutate(ctx, vaultID, func(tx ports.LedgerTx, v *domain.Vault) error {
		if err := s.auth.Require(ctx, v.Owner); err != nil {
			return err
		}
		owner = v.Owner
		if !domain.IsPositiveAmount(amount) {
			return apperror.ErrInvalidAmount()
		}
		if to.IsZero() {
			return apperror.Validation("recipient is required")
		}
		return s.debit(ctx, tx, v, to, amount)
	})
	if err != nil {
		return nil, s.observe("withdraw", err)
	}
	s.metrics.ObserveOperation("withdraw", nil)

	s.log.Info().
		Str("vault_id", v.ID).
		Str("to", to.String()).
		Str("amount", amount.String()).
		Str("balance", v.Balance.String()).
		Msg("withdrawal completed")

	ev := domain.NewVaultEvent(domain.VaultEventWithdraw, v, owner)
	ev.Counterparty = to
	ev.Amount = &amount
	s.events.Publish(ctx, ev)

	return v, nil
}

// SpendForAlgo pays `to` on behalf of an algorithm. The executor, or the
// owner when no executor is set, must authorize. Once the balance change has
// committed, the spend is mirrored into the bound audit log. That append is a
// separate write: its failure is reported on the receipt and never undoes the
// spend.
func (s *VaultServiceImpl) SpendForAlgo(ctx context.Context, req ports.SpendRequest) (*domain.SpendReceipt, error) {
	if !domain.IsPositiveAmount(req.Amount) {
		return nil, s.observe("spend", apperror.ErrInvalidAmount())
	}

	var spender domain.Identity
	v, err := s.mutate(ctx, req.VaultID, func(tx ports.LedgerTx, v *domain.Vault) error {
		if v.Kind.Capabilities().PauseSwitch && v.Paused {
			return apperror.ErrPaused()
		}
		spender = v.Spender()
		if err := s.auth.Require(ctx, spender); err != nil {
			return err
		}
		if req.To.IsZero() {
			return apperror.Validation("recipient is required")
		}
		return s.debit(ctx, tx, v, req.To, req.Amount)
	})
	if err != nil {
		return nil, s.observe("spend", err)
	}
	s.metrics.ObserveOperation("spend", nil)

	receipt := &domain.SpendReceipt{Vault: v}

	if v.Kind.Capabilities().AuditLink && v.HistoryTarget != nil {
		// The vault writes to the audit log as itself.
		auditCtx := domain.WithPrincipal(context.WithoutCancel(ctx), v.Address)
		seq, err := s.audit.Append(auditCtx, *v.HistoryTarget, req.AlgoID, req.Reference, req.Note)
		if err != nil {
			s.log.Warn().Err(err).
				Str("vault_id", v.ID).
				Str("history_target", *v.HistoryTarget).
				Uint32("algo_id", req.AlgoID).
				Msg("audit append failed after committed spend")
			s.metrics.AuditAppendFailed(v.ID)
			receipt.AuditError = err.Error()
		} else {
			receipt.AuditSequence = &seq
		}
	}

	s.log.Info().
		Str("vault_id", v.ID).
		Uint32("algo_id", req.AlgoID).
		Str("to", req.To.String()).
		Str("amount", req.Amount.String()).
		Str("reference", req.Reference).
		Str("balance", v.Balance.String()).
		Msg("algorithm spend executed")

	ev := domain.NewVaultEvent(domain.VaultEventExecution, v, spender)
	ev.Counterparty = req.To
	ev.Amount = &req.Amount
	ev.AlgoID = &req.AlgoID
	ev.Reference = req.Reference
	s.events.Publish(ctx, ev)

	return receipt, nil
}

// debit checks funds and moves amount from the vault to `to`. The recipient
// must be an account: a vault address would take the asset without crediting
// any vault balance.
func (s *VaultServiceImpl) debit(ctx context.Context, tx ports.LedgerTx, v *domain.Vault, to domain.Identity, amount decimal.Decimal) error {
	if !to.IsAccount() {
		return apperror.Validation("recipient must be an account, not a vault address")
	}
	if v.Balance.LessThan(amount) {
		return apperror.ErrInsufficientBalance()
	}
	if err := s.assets.Transfer(ctx, tx, v.Asset, v.Address, to, amount); err != nil {
		return err
	}
	v.Balance = v.Balance.Sub(amount)
	return nil
}

// SetExecutor delegates algorithm spends to executor, replacing any previous one.
func (s *VaultServiceImpl) SetExecutor(ctx context.Context, vaultID string, executor domain.Identity) (*domain.Vault, error) {
	if executor.IsZero() {
		return nil, apperror.Validation("executor is required")
	}
	return s.ownerUpdate(ctx, "set_executor", domain.VaultEventExecutorChanged, vaultID, func(v *domain.Vault) error {
		v.Executor = &executor
		return nil
	})
}

// ClearExecutor returns spend authority to the owner.
func (s *VaultServiceImpl) ClearExecutor(ctx context.Context, vaultID string) (*domain.Vault, error) {
	return s.ownerUpdate(ctx, "clear_executor", domain.VaultEventExecutorChanged, vaultID, func(v *domain.Vault) error {
		v.Executor = nil
		return nil
	})
}

// SetHistoryTarget binds the audit log that receives spend records.
func (s *VaultServiceImpl) SetHistoryTarget(ctx context.Context, vaultID string, logID string) (*domain.Vault, error) {
	if logID == "" {
		return nil, apperror.Validation("history target is required")
	}
	return s.ownerUpdate(ctx, "set_history", domain.VaultEventHistoryChanged, vaultID, func(v *domain.Vault) error {
		if !v.Kind.Capabilities().AuditLink {
			return apperror.ErrCapabilityDisabled("audit link")
		}
		v.HistoryTarget = &logID
		return nil
	})
}

// TransferOwnership hands every owner right to newOwner.
func (s *VaultServiceImpl) TransferOwnership(ctx context.Context, vaultID string, newOwner domain.Identity) (*domain.Vault, error) {
	if newOwner.IsZero() {
		return nil, apperror.Validation("new owner is required")
	}
	return s.ownerUpdate(ctx, "transfer_ownership", domain.VaultEventOwnershipTransfer, vaultID, func(v *domain.Vault) error {
		v.Owner = newOwner
		return nil
	})
}

// SetPaused flips the pause switch of a pausable vault.
func (s *VaultServiceImpl) SetPaused(ctx context.Context, vaultID string, paused bool) (*domain.Vault, error) {
	return s.ownerUpdate(ctx, "set_paused", domain.VaultEventPauseChanged, vaultID, func(v *domain.Vault) error {
		if !v.Kind.Capabilities().PauseSwitch {
			return apperror.ErrCapabilityDisabled("pause switch")
		}
		v.Paused = paused
		return nil
	})
}

// ownerUpdate applies an owner-authorized configuration change.
func (s *VaultServiceImpl) ownerUpdate(ctx context.Context, op string, evType domain.VaultEventType, vaultID string, change func(v *domain.Vault) error) (*domain.Vault, error) {
	var owner domain.Identity
	v, err := s.mutate(ctx, vaultID, func(_ ports.LedgerTx, v *domain.Vault) error {
		if err := s.auth.Require(ctx, v.Owner); err != nil {
			return err
		}
		owner = v.Owner
		return change(v)
	})
	if err != nil {
		return nil, s.observe(op, err)
	}
	s.metrics.ObserveOperation(op, nil)

	s.log.Info().Str("vault_id", v.ID).Str("op", op).Msg("vault updated")
	s.events.Publish(ctx, domain.NewVaultEvent(evType, v, owner))

	return v, nil
}

// Get returns a snapshot of the vault.
func (s *VaultServiceImpl) Get(ctx context.Context, vaultID string) (*domain.Vault, error) {
	var v *domain.Vault
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		v, err = loadVault(ctx, r, vaultID)
		return err
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return v, nil
}

// Balance returns the vault's balance.
func (s *VaultServiceImpl) Balance(ctx context.Context, vaultID string) (decimal.Decimal, error) {
	v, err := s.Get(ctx, vaultID)
	if err != nil {
		return decimal.Zero, err
	}
	return v.Balance, nil
}

// Executor returns the delegated executor, or ExecutorNotSet.
func (s *VaultServiceImpl) Executor(ctx context.Context, vaultID string) (domain.Identity, error) {
	v, err := s.Get(ctx, vaultID)
	if err != nil {
		return "", err
	}
	if v.Executor == nil {
		return "", apperror.ErrExecutorNotSet()
	}
	return *v.Executor, nil
}

// mutate loads the vault, applies fn and persists the result in one ledger update.
// Nothing is written if fn fails.
func (s *VaultServiceImpl) mutate(ctx context.Context, vaultID string, fn func(tx ports.LedgerTx, v *domain.Vault) error) (*domain.Vault, error) {
	var out *domain.Vault
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		v, err := loadVault(ctx, tx, vaultID)
		if err != nil {
			return err
		}
		if err := fn(tx, v); err != nil {
			return err
		}
		if v.Balance.Sign() < 0 {
			return apperror.ErrInsufficientBalance()
		}
		if err := saveVault(ctx, tx, v); err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *VaultServiceImpl) observe(op string, err error) error {
	err = apperror.Internal(err)
	s.metrics.ObserveOperation(op, err)
	return err
}

func loadVault(ctx context.Context, r ports.LedgerReader, vaultID string) (*domain.Vault, error) {
	if vaultID == "" {
		return nil, apperror.ErrNotFound("vault")
	}
	v := &domain.Vault{ID: vaultID}
	found, err := readJSON(ctx, r, domain.VaultKey(vaultID, fieldKind), &v.Kind)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrNotFound("vault")
	}

	fields := []struct {
		name string
		dst  any
	}{
		{fieldAddress, &v.Address},
		{fieldOwner, &v.Owner},
		{fieldAsset, &v.Asset},
		{fieldBalance, &v.Balance},
		{fieldPaused, &v.Paused},
	}
	for _, f := range fields {
		if _, err := readJSON(ctx, r, domain.VaultKey(vaultID, f.name), f.dst); err != nil {
			return nil, err
		}
	}

	var executor domain.Identity
	found, err = readJSON(ctx, r, domain.VaultKey(vaultID, fieldExecutor), &executor)
	if err != nil {
		return nil, err
	}
	if found {
		v.Executor = &executor
	}

	var history string
	found, err = readJSON(ctx, r, domain.VaultKey(vaultID, fieldHistory), &history)
	if err != nil {
		return nil, err
	}
	if found {
		v.HistoryTarget = &history
	}

	return v, nil
}

func saveVault(ctx context.Context, tx ports.LedgerTx, v *domain.Vault) error {
	values := map[string]any{
		fieldKind:    v.Kind,
		fieldAddress: v.Address,
		fieldOwner:   v.Owner,
		fieldAsset:   v.Asset,
		fieldBalance: v.Balance,
		fieldPaused:  v.Paused,
	}
	for name, val := range values {
		if err := writeJSON(ctx, tx, domain.VaultKey(v.ID, name), val); err != nil {
			return err
		}
	}

	if v.Executor != nil {
		if err := writeJSON(ctx, tx, domain.VaultKey(v.ID, fieldExecutor), *v.Executor); err != nil {
			return err
		}
	} else if err := deleteKey(ctx, tx, domain.VaultKey(v.ID, fieldExecutor)); err != nil {
		return err
	}

	if v.HistoryTarget != nil {
		return writeJSON(ctx, tx, domain.VaultKey(v.ID, fieldHistory), *v.HistoryTarget)
	}
	return deleteKey(ctx, tx, domain.VaultKey(v.ID, fieldHistory))
}

// NopPublisher discards events.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *domain.VaultEvent) {}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, error) {}
func (nopMetrics) AuditAppendFailed(string)       {}
