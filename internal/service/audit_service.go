package service

import (
	"context"
	"fmt"
	"math"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	historyAdmin  = "admin"
	historyWriter = "writer"
	historyLastTS = "last_ts"
)

// AuditLogServiceImpl implements ports.AuditLogService over the ledger.
// Each log keeps, per subject, a count and one record per sequence number.
type AuditLogServiceImpl struct {
	store ports.LedgerStore
	auth  ports.Authorizer
	clock ports.Clock
	log   zerolog.Logger
}

// NewAuditLogService creates a new AuditLogServiceImpl.
func NewAuditLogService(store ports.LedgerStore, auth ports.Authorizer, clock ports.Clock, log zerolog.Logger) *AuditLogServiceImpl {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AuditLogServiceImpl{store: store, auth: auth, clock: clock, log: log}
}

// Initialize creates log logID administered by admin. The writer starts as admin.
func (s *AuditLogServiceImpl) Initialize(ctx context.Context, logID string, admin domain.Identity) (*domain.AuditLog, error) {
	if logID == "" || admin.IsZero() {
		return nil, apperror.Validation("log id and admin are required")
	}

	info := &domain.AuditLog{ID: logID, Admin: admin, Writer: admin}
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		exists, err := tx.Has(ctx, domain.HistoryKey(logID, historyAdmin))
		if err != nil {
			return fmt.Errorf("check log: %w", err)
		}
		if exists {
			return apperror.ErrAlreadyInitialized("audit log")
		}
		if err := s.auth.Require(ctx, admin); err != nil {
			return err
		}
		return saveLogInfo(ctx, tx, info)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().Str("log_id", logID).Str("admin", admin.String()).Msg("audit log initialized")
	return info, nil
}

// Info returns the log's admin and writer.
func (s *AuditLogServiceImpl) Info(ctx context.Context, logID string) (*domain.AuditLog, error) {
	var info *domain.AuditLog
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		info, err = loadLogInfo(ctx, r, logID)
		return err
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return info, nil
}

// SetWriter replaces the identity allowed to append. Admin only.
func (s *AuditLogServiceImpl) SetWriter(ctx context.Context, logID string, writer domain.Identity) (*domain.AuditLog, error) {
	if writer.IsZero() {
		return nil, apperror.Validation("writer is required")
	}
	return s.adminUpdate(ctx, logID, func(info *domain.AuditLog) {
		info.Writer = writer
	})
}

// TransferAdmin hands log administration to newAdmin. Admin only.
func (s *AuditLogServiceImpl) TransferAdmin(ctx context.Context, logID string, newAdmin domain.Identity) (*domain.AuditLog, error) {
	if newAdmin.IsZero() {
		return nil, apperror.Validation("admin is required")
	}
	return s.adminUpdate(ctx, logID, func(info *domain.AuditLog) {
		info.Admin = newAdmin
	})
}

func (s *AuditLogServiceImpl) adminUpdate(ctx context.Context, logID string, change func(info *domain.AuditLog)) (*domain.AuditLog, error) {
	var info *domain.AuditLog
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		var err error
		info, err = loadLogInfo(ctx, tx, logID)
		if err != nil {
			return err
		}
		if err := s.auth.Require(ctx, info.Admin); err != nil {
			return err
		}
		change(info)
		return saveLogInfo(ctx, tx, info)
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	s.log.Info().
		Str("log_id", logID).
		Str("admin", info.Admin.String()).
		Str("writer", info.Writer.String()).
		Msg("audit log updated")
	return info, nil
}

// Append stores a record for subjectID and returns its sequence number.
// Sequences start at 0 and grow by one per append. Timestamps never go
// backwards within a log even if the clock does.
func (s *AuditLogServiceImpl) Append(ctx context.Context, logID string, subjectID uint32, reference, note string) (uint32, error) {
	var rec domain.AuditRecord
	err := s.store.Update(ctx, func(tx ports.LedgerTx) error {
		info, err := loadLogInfo(ctx, tx, logID)
		if err != nil {
			return err
		}
		if err := s.auth.Require(ctx, info.Writer); err != nil {
			return err
		}

		count, err := readCount(ctx, tx, logID, subjectID)
		if err != nil {
			return err
		}
		if count == math.MaxUint32 {
			return apperror.ErrStorageExhausted()
		}

		var lastTS uint64
		if _, err := readJSON(ctx, tx, domain.HistoryKey(logID, historyLastTS), &lastTS); err != nil {
			return err
		}
		ts := uint64(s.clock.Now().Unix())
		if ts < lastTS {
			ts = lastTS
		}

		rec = domain.AuditRecord{
			Sequence:  count,
			Timestamp: ts,
			SubjectID: subjectID,
			Reference: reference,
			Note:      note,
		}
		if err := writeJSON(ctx, tx, domain.HistoryRecordKey(logID, subjectID, count), rec); err != nil {
			return err
		}
		if err := writeJSON(ctx, tx, domain.HistoryCountKey(logID, subjectID), count+1); err != nil {
			return err
		}
		return writeJSON(ctx, tx, domain.HistoryKey(logID, historyLastTS), ts)
	})
	if err != nil {
		return 0, apperror.Internal(err)
	}

	s.log.Debug().
		Str("log_id", logID).
		Uint32("subject_id", subjectID).
		Uint32("sequence", rec.Sequence).
		Str("reference", reference).
		Msg("audit record appended")

	return rec.Sequence, nil
}

// Count returns the number of records for subjectID; 0 for unknown logs.
func (s *AuditLogServiceImpl) Count(ctx context.Context, logID string, subjectID uint32) (uint32, error) {
	var count uint32
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var err error
		count, err = readCount(ctx, r, logID, subjectID)
		return err
	})
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

// Get returns the record at seq, or nil if there is none.
func (s *AuditLogServiceImpl) Get(ctx context.Context, logID string, subjectID, seq uint32) (*domain.AuditRecord, error) {
	var rec *domain.AuditRecord
	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		var out domain.AuditRecord
		found, err := readJSON(ctx, r, domain.HistoryRecordKey(logID, subjectID, seq), &out)
		if err != nil {
			return err
		}
		if found {
			rec = &out
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return rec, nil
}

// List returns up to limit records starting at sequence start, in sequence
// order. Missing sequences are skipped rather than counted.
func (s *AuditLogServiceImpl) List(ctx context.Context, logID string, subjectID, start, limit uint32) ([]domain.AuditRecord, error) {
	records := []domain.AuditRecord{}
	if limit == 0 {
		return records, nil
	}

	err := s.store.View(ctx, func(r ports.LedgerReader) error {
		count, err := readCount(ctx, r, logID, subjectID)
		if err != nil {
			return err
		}
		for i := start; i < count && uint32(len(records)) < limit; i++ {
			var rec domain.AuditRecord
			found, err := readJSON(ctx, r, domain.HistoryRecordKey(logID, subjectID, i), &rec)
			if err != nil {
				return err
			}
			if found {
				records = append(records, rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return records, nil
}

func readCount(ctx context.Context, r ports.LedgerReader, logID string, subjectID uint32) (uint32, error) {
	var count uint32
	if _, err := readJSON(ctx, r, domain.HistoryCountKey(logID, subjectID), &count); err != nil {
		return 0, err
	}
	return count, nil
}

func loadLogInfo(ctx context.Context, r ports.LedgerReader, logID string) (*domain.AuditLog, error) {
	info := &domain.AuditLog{ID: logID}
	found, err := readJSON(ctx, r, domain.HistoryKey(logID, historyAdmin), &info.Admin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrNotFound("audit log")
	}
	if _, err := readJSON(ctx, r, domain.HistoryKey(logID, historyWriter), &info.Writer); err != nil {
		return nil, err
	}
	return info, nil
}

func saveLogInfo(ctx context.Context, tx ports.LedgerTx, info *domain.AuditLog) error {
	if err := writeJSON(ctx, tx, domain.HistoryKey(info.ID, historyAdmin), info.Admin); err != nil {
		return err
	}
	return writeJSON(ctx, tx, domain.HistoryKey(info.ID, historyWriter), info.Writer)
}
