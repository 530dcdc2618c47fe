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

// AssetLedgerImpl implements ports.AssetLedger: per-asset holder balances
// kept in the same ledger as the vaults.
type AssetLedgerImpl struct{}

// NewAssetLedger creates an AssetLedgerImpl.
func NewAssetLedger() *AssetLedgerImpl {
	return &AssetLedgerImpl{}
}

// BalanceOf returns holder's balance of asset; unknown holders have zero.
func (l *AssetLedgerImpl) BalanceOf(ctx context.Context, r ports.LedgerReader, asset string, holder domain.Identity) (decimal.Decimal, error) {
	bal := decimal.Zero
	if _, err := readJSON(ctx, r, domain.AssetBalanceKey(asset, holder), &bal); err != nil {
		return decimal.Zero, err
	}
	return bal, nil
}

// Transfer moves amount of asset from one holder to another within tx.
func (l *AssetLedgerImpl) Transfer(ctx context.Context, tx ports.LedgerTx, asset string, from, to domain.Identity, amount decimal.Decimal) error {
	if !domain.IsPositiveAmount(amount) {
		return apperror.ErrInvalidAmount()
	}

	fromBal, err := l.BalanceOf(ctx, tx, asset, from)
	if err != nil {
		return err
	}
	if fromBal.LessThan(amount) {
		return apperror.ErrInsufficientBalance()
	}
	if from == to {
		return nil
	}

	toBal, err := l.BalanceOf(ctx, tx, asset, to)
	if err != nil {
		return err
	}
	newTo, err := domain.CheckedAdd(toBal, amount)
	if err != nil {
		return apperror.ErrInvalidAmount()
	}

	if err := writeJSON(ctx, tx, domain.AssetBalanceKey(asset, from), fromBal.Sub(amount)); err != nil {
		return err
	}
	return writeJSON(ctx, tx, domain.AssetBalanceKey(asset, to), newTo)
}

// AssetServiceImpl implements ports.AssetService.
type AssetServiceImpl struct {
	store  ports.LedgerStore
	ledger *AssetLedgerImpl
	auth   ports.Authorizer
	admin  domain.Identity
	log    zerolog.Logger
}

// NewAssetService creates an AssetServiceImpl. Only admin may mint; an empty
// admin disables minting.
func NewAssetService(store ports.LedgerStore, ledger *AssetLedgerImpl, auth ports.Authorizer, admin domain.Identity, log zerolog.Logger) *AssetServiceImpl {
	return &AssetServiceImpl{
		store:  store,
		ledger: ledger,
		auth:   auth,
		admin:  admin,
		log:    log,
	}
}

// Mint credits amount of asset to holder and returns the new balance.
func (s *AssetServiceImpl) Mint(ctx context.Context, asset string, to domain.Identity, amount decimal.Decimal) (decimal.Decimal, error) {
	if asset == "" || to.IsZero() {
		return decimal.Zero, apperror.Validation("asset and holder are required")
	}
	if !domain.IsPositiveAmount(amount) {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	if err := s.auth.Require(ctx, s.admin); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		current, err := s.ledger.BalanceOf(ctx, tx, asset, to)
		if err != nil {
			return err
		}
		balance, err = domain.CheckedAdd(current, amount)
		if err != nil {
			return apperror.ErrInvalidAmount()
		}
		return writeJSON(ctx, tx, domain.AssetBalanceKey(asset, to), balance)
	})
	if err != nil {
		return decimal.Zero, apperror.Internal(err)
	}

	s.log.Info().
		Str("asset", asset).
		Str("holder", to.String()).
		Str("amount", amount.String()).
		Msg("asset minted")

	return balance, nil
}

// BalanceOf reads holder's committed balance.
func (s *AssetServiceImpl) BalanceOf(ctx context.Context, asset string, holder domain.Identity) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		balance, err = s.ledger.BalanceOf(ctx, r, asset, holder)
		return err
	})
	if err != nil {
		return decimal.Zero, apperror.Internal(fmt.Errorf("asset balance: %w", err))
	}
	return balance, nil
}
