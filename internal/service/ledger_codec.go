package service

import (
	"context"
	"encoding/json"
	"fmt"

	"delegated-treasury/internal/core/ports"
	"delegated-treasury/pkg/apperror"
)

// readJSON decodes the value at key into dst. It reports false when the key is absent.
func readJSON(ctx context.Context, r ports.LedgerReader, key string, dst any) (bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, apperror.ErrCorruptState(fmt.Errorf("decode %s: %w", key, err))
	}
	return true, nil
}

func writeJSON(ctx context.Context, tx ports.LedgerTx, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := tx.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func deleteKey(ctx context.Context, tx ports.LedgerTx, key string) error {
	if err := tx.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
