package service

import (
	"context"
	"math"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService.
type RegistryServiceImpl struct {
	store ports.LedgerStore
	auth  ports.Authorizer
	log   zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(store ports.LedgerStore, auth ports.Authorizer, log zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{store: store, auth: auth, log: log}
}

func (s *RegistryServiceImpl) Initialize(ctx context.Context, admin domain.Identity) (*domain.RegistryInfo, error) {
	if admin.IsZero() {
		return nil, apperror.Validation("admin is required")
	}

	var info *domain.RegistryInfo
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		exists, err := tx.Has(ctx, domain.RegistryKey("admin"))
		if err != nil {
			return err
		}
		if exists {
			return apperror.ErrAlreadyInitialized("registry")
		}
		if err := s.auth.Require(ctx, admin); err != nil {
			return err
		}
		if err := writeJSON(ctx, tx, domain.RegistryKey("admin"), admin); err != nil {
			return err
		}
		total, err := readNextAlgoID(ctx, tx)
		if err != nil {
			return err
		}
		info = &domain.RegistryInfo{Admin: admin, Total: total}
		return nil
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Str("admin", admin.String()).Msg("registry initialized")
	return info, nil
}

func (s *RegistryServiceImpl) Info(ctx context.Context) (*domain.RegistryInfo, error) {
	var info *domain.RegistryInfo
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		info, err = loadRegistryInfo(ctx, r)
		return err
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return info, nil
}

func (s *RegistryServiceImpl) TransferAdmin(ctx context.Context, newAdmin domain.Identity) (*domain.RegistryInfo, error) {
	if newAdmin.IsZero() {
		return nil, apperror.Validation("admin is required")
	}

	var info *domain.RegistryInfo
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		var err error
		info, err = loadRegistryInfo(ctx, tx)
		if err != nil {
			return err
		}
		if err := s.auth.Require(ctx, info.Admin); err != nil {
			return err
		}
		info.Admin = newAdmin
		return writeJSON(ctx, tx, domain.RegistryKey("admin"), newAdmin)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Str("admin", newAdmin.String()).Msg("registry admin transferred")
	return info, nil
}

// CreateAlgorithm registers an active algorithm owned by req.Owner and
// returns it with the next sequential id.
func (s *RegistryServiceImpl) CreateAlgorithm(ctx context.Context, req ports.CreateAlgorithmRequest) (*domain.Algorithm, error) {
	if req.Owner.IsZero() {
		return nil, apperror.Validation("owner is required")
	}
	if err := s.auth.Require(ctx, req.Owner); err != nil {
		return nil, err
	}

	var algo *domain.Algorithm
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		id, err := readNextAlgoID(ctx, tx)
		if err != nil {
			return err
		}
		if id == math.MaxUint32 {
			return apperror.ErrStorageExhausted()
		}
		algo = &domain.Algorithm{
			ID:          id,
			Owner:       req.Owner,
			Name:        req.Name,
			MetadataURI: req.MetadataURI,
			ParamsHash:  req.ParamsHash,
			Active:      true,
		}
		if err := writeJSON(ctx, tx, domain.AlgorithmKey(id), algo); err != nil {
			return err
		}
		return writeJSON(ctx, tx, domain.RegistryKey("next_id"), id+1)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().
		Uint32("algo_id", algo.ID).
		Str("owner", algo.Owner.String()).
		Str("name", algo.Name).
		Msg("algorithm registered")
	return algo, nil
}

// SetActive toggles an algorithm. Algorithm owner only.
func (s *RegistryServiceImpl) SetActive(ctx context.Context, id uint32, active bool) (*domain.Algorithm, error) {
	return s.updateAlgorithm(ctx, id, func(a *domain.Algorithm) {
		a.Active = active
	})
}

// UpdateMetadata replaces name, metadata URI and params hash. Algorithm owner only.
func (s *RegistryServiceImpl) UpdateMetadata(ctx context.Context, id uint32, req ports.UpdateAlgorithmRequest) (*domain.Algorithm, error) {
	return s.updateAlgorithm(ctx, id, func(a *domain.Algorithm) {
		a.Name = req.Name
		a.MetadataURI = req.MetadataURI
		a.ParamsHash = req.ParamsHash
	})
}

func (s *RegistryServiceImpl) updateAlgorithm(ctx context.Context, id uint32, change func(a *domain.Algorithm)) (*domain.Algorithm, error) {
	var algo domain.Algorithm
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		found, err := readJSON(ctx, tx, domain.AlgorithmKey(id), &algo)
		if err != nil {
			return err
		}
		if !found {
			return apperror.ErrNotFound("algorithm")
		}
		if err := s.auth.Require(ctx, algo.Owner); err != nil {
			return err
		}
		change(&algo)
		return writeJSON(ctx, tx, domain.AlgorithmKey(id), algo)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Uint32("algo_id", id).Bool("active", algo.Active).Msg("algorithm updated")
	return &algo, nil
}

func (s *RegistryServiceImpl) GetAlgorithm(ctx context.Context, id uint32) (*domain.Algorithm, error) {
	var algo *domain.Algorithm
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var a domain.Algorithm
		found, err := readJSON(ctx, r, domain.AlgorithmKey(id), &a)
		if err != nil {
			return err
		}
		if found {
			algo = &a
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return algo, nil
}

func (s *RegistryServiceImpl) Total(ctx context.Context) (uint32, error) {
	var total uint32
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		total, err = readNextAlgoID(ctx, r)
		return err
	})
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return total, nil
}

func readNextAlgoID(ctx context.Context, r ports.LedgerReader) (uint32, error) {
	var next uint32
	if _, err := readJSON(ctx, r, domain.RegistryKey("next_id"), &next); err != nil {
		return 0, err
	}
	return next, nil
}

func loadRegistryInfo(ctx context.Context, r ports.LedgerReader) (*domain.RegistryInfo, error) {
	info := &domain.RegistryInfo{}
	found, err := readJSON(ctx, r, domain.RegistryKey("admin"), &info.Admin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrNotFound("registry")
	}
	if info.Total, err = readNextAlgoID(ctx, r); err != nil {
		return nil, err
	}
	return info, nil
}
