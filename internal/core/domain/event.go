package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VaultEventType names a committed vault state change.
type VaultEventType string

const (
	VaultEventInitialized       VaultEventType = "INITIALIZED"
	VaultEventDeposit           VaultEventType = "DEPOSIT"
	VaultEventWithdraw          VaultEventType = "WITHDRAW"
	VaultEventExecution         VaultEventType = "EXECUTION"
	VaultEventExecutorChanged   VaultEventType = "EXECUTOR_CHANGED"
	VaultEventHistoryChanged    VaultEventType = "HISTORY_CHANGED"
	VaultEventOwnershipTransfer VaultEventType = "OWNERSHIP_TRANSFERRED"
	VaultEventPauseChanged      VaultEventType = "PAUSE_CHANGED"
)

// VaultEvent is published after a vault operation commits.
type VaultEvent struct {
	ID           uuid.UUID        `json:"id"`
	Type         VaultEventType   `json:"type"`
	VaultID      string           `json:"vault_id"`
	Actor        Identity         `json:"actor,omitempty"`
	Counterparty Identity         `json:"counterparty,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	AlgoID       *uint32          `json:"algo_id,omitempty"`
	Reference    string           `json:"reference,omitempty"`
	Balance      decimal.Decimal  `json:"balance"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// NewVaultEvent stamps an event for v.
func NewVaultEvent(t VaultEventType, v *Vault, actor Identity) *VaultEvent {
	return &VaultEvent{
		ID:         uuid.New(),
		Type:       t,
		VaultID:    v.ID,
		Actor:      actor,
		Balance:    v.Balance,
		OccurredAt: time.Now().UTC(),
	}
}
