package service

import (
	"context"
	"fmt"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// FactoryServiceImpl implements ports.FactoryService. Creator vaults are
// provisioned in the same ledger update that records the creator mapping.
type FactoryServiceImpl struct {
	store       ports.LedgerStore
	provisioner ports.VaultProvisioner
	auth        ports.Authorizer
	log         zerolog.Logger
}

// NewFactoryService creates a new FactoryServiceImpl.
func NewFactoryService(store ports.LedgerStore, provisioner ports.VaultProvisioner, auth ports.Authorizer, log zerolog.Logger) *FactoryServiceImpl {
	return &FactoryServiceImpl{
		store:       store,
		provisioner: provisioner,
		auth:        auth,
		log:         log,
	}
}

func creatorKey(creator domain.Identity) string {
	return domain.FactoryKey("creator", creator.String())
}

func creatorIndexKey(i uint32) string {
	return domain.FactoryKey("creators", domain.Seq(i))
}

func (s *FactoryServiceImpl) Initialize(ctx context.Context, admin domain.Identity, asset string) (*domain.FactoryInfo, error) {
	if admin.IsZero() || asset == "" {
		return nil, apperror.Validation("admin and asset are required")
	}

	info := &domain.FactoryInfo{Admin: admin, Asset: asset}
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		exists, err := tx.Has(ctx, domain.FactoryKey("admin"))
		if err != nil {
			return err
		}
		if exists {
			return apperror.ErrAlreadyInitialized("factory")
		}
		if err := s.auth.Require(ctx, admin); err != nil {
			return err
		}
		if err := writeJSON(ctx, tx, domain.FactoryKey("admin"), admin); err != nil {
			return err
		}
		return writeJSON(ctx, tx, domain.FactoryKey("asset"), asset)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Str("admin", admin.String()).Str("asset", asset).Msg("factory initialized")
	return info, nil
}

func (s *FactoryServiceImpl) Info(ctx context.Context) (*domain.FactoryInfo, error) {
	var info *domain.FactoryInfo
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		info, err = loadFactoryInfo(ctx, r)
		return err
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return info, nil
}

func (s *FactoryServiceImpl) UpdateAdmin(ctx context.Context, newAdmin domain.Identity) (*domain.FactoryInfo, error) {
	if newAdmin.IsZero() {
		return nil, apperror.Validation("admin is required")
	}
	return s.adminUpdate(ctx, func(info *domain.FactoryInfo) {
		info.Admin = newAdmin
	})
}

// UpdateAsset changes the asset of vaults created from now on.
func (s *FactoryServiceImpl) UpdateAsset(ctx context.Context, asset string) (*domain.FactoryInfo, error) {
	if asset == "" {
		return nil, apperror.Validation("asset is required")
	}
	return s.adminUpdate(ctx, func(info *domain.FactoryInfo) {
		info.Asset = asset
	})
}

func (s *FactoryServiceImpl) adminUpdate(ctx context.Context, change func(info *domain.FactoryInfo)) (*domain.FactoryInfo, error) {
	var info *domain.FactoryInfo
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		var err error
		info, err = loadFactoryInfo(ctx, tx)
		if err != nil {
			return err
		}
		if err := s.auth.Require(ctx, info.Admin); err != nil {
			return err
		}
		change(info)
		if err := writeJSON(ctx, tx, domain.FactoryKey("admin"), info.Admin); err != nil {
			return err
		}
		return writeJSON(ctx, tx, domain.FactoryKey("asset"), info.Asset)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Str("admin", info.Admin.String()).Str("asset", info.Asset).Msg("factory updated")
	return info, nil
}

// CreateCreatorVault provisions the creator's vault. Either the creator or
// the factory admin must authorize; a creator gets at most one vault.
func (s *FactoryServiceImpl) CreateCreatorVault(ctx context.Context, creator domain.Identity) (*domain.Vault, error) {
	if creator.IsZero() {
		return nil, apperror.Validation("creator is required")
	}
	vaultID, err := domain.CreatorVaultID(creator)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive creator vault id: %w", err))
	}

	var v *domain.Vault
	err = s.store.Update(ctx, func(tx ports.LedgerTx) error {
		info, err := loadFactoryInfo(ctx, tx)
		if err != nil {
			return err
		}
		if err := s.auth.Require(ctx, creator); err != nil {
			if err := s.auth.Require(ctx, info.Admin); err != nil {
				return err
			}
		}

		registered, err := tx.Has(ctx, creatorKey(creator))
		if err != nil {
			return err
		}
		if registered {
			return apperror.ErrAlreadyRegistered()
		}

		v, err = s.provisioner.Provision(ctx, tx, ports.InitVaultRequest{
			VaultID: vaultID,
			Kind:    domain.VaultKindCreator,
			Owner:   creator,
			Asset:   info.Asset,
		})
		if err != nil {
			return err
		}

		if err := writeJSON(ctx, tx, creatorKey(creator), vaultID); err != nil {
			return err
		}
		if err := writeJSON(ctx, tx, creatorIndexKey(info.Creators), creator); err != nil {
			return err
		}
		return writeJSON(ctx, tx, domain.FactoryKey("creators", "count"), info.Creators+1)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().
		Str("creator", creator.String()).
		Str("vault_id", v.ID).
		Str("asset", v.Asset).
		Msg("creator vault created")
	return v, nil
}

// GetCreatorVault returns the vault id assigned to creator.
func (s *FactoryServiceImpl) GetCreatorVault(ctx context.Context, creator domain.Identity) (string, error) {
	var vaultID string
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		found, err := readJSON(ctx, r, creatorKey(creator), &vaultID)
		if err != nil {
			return err
		}
		if !found {
			return apperror.ErrNotFound("creator vault")
		}
		return nil
	})
	if err != nil {
		return "", apperror.Internal(err)
	}
	return vaultID, nil
}

func (s *FactoryServiceImpl) IsCreatorRegistered(ctx context.Context, creator domain.Identity) (bool, error) {
	var registered bool
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		registered, err = r.Has(ctx, creatorKey(creator))
		return err
	})
	if err != nil {
		return false, apperror.Internal(err)
	}
	return registered, nil
}

// ListCreators pages through creators in registration order and reports the total.
func (s *FactoryServiceImpl) ListCreators(ctx context.Context, offset, limit uint32) ([]domain.Identity, uint32, error) {
	creators := []domain.Identity{}
	var total uint32
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		if _, err := readJSON(ctx, r, domain.FactoryKey("creators", "count"), &total); err != nil {
			return err
		}
		for i := offset; i < total && uint32(len(creators)) < limit; i++ {
			var c domain.Identity
			found, err := readJSON(ctx, r, creatorIndexKey(i), &c)
			if err != nil {
				return err
			}
			if found {
				creators = append(creators, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return creators, total, nil
}

func loadFactoryInfo(ctx context.Context, r ports.LedgerReader) (*domain.FactoryInfo, error) {
	info := &domain.FactoryInfo{}
	found, err := readJSON(ctx, r, domain.FactoryKey("admin"), &info.Admin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrNotFound("factory")
	}
	if _, err := readJSON(ctx, r, domain.FactoryKey("asset"), &info.Asset); err != nil {
		return nil, err
	}
	if _, err := readJSON(ctx, r, domain.FactoryKey("creators", "count"), &info.Creators); err != nil {
		return nil, err
	}
	return info, nil
}
