package domain

import (
	"github.com/shopspring/decimal"
)

// VaultKind selects which optional capabilities a vault carries.
type VaultKind string

const (
	VaultKindTreasury VaultKind = "TREASURY" // audit-linked, no pause switch
	VaultKindCreator  VaultKind = "CREATOR"  // pausable, no audit link
)

// Capabilities of a vault kind.
type Capabilities struct {
	AuditLink   bool
	PauseSwitch bool
}

func (k VaultKind) Valid() bool {
	return k == VaultKindTreasury || k == VaultKindCreator
}

func (k VaultKind) Capabilities() Capabilities {
	switch k {
	case VaultKindTreasury:
		return Capabilities{AuditLink: true}
	case VaultKindCreator:
		return Capabilities{PauseSwitch: true}
	default:
		return Capabilities{}
	}
}

// Vault holds a balance of a single asset on behalf of its owner.
type Vault struct {
	ID            string          `json:"id"`
	Kind          VaultKind       `json:"kind"`
	Address       Identity        `json:"address"` // ledger holder of the vault's asset balance
	Owner         Identity        `json:"owner"`
	Asset         string          `json:"asset"`
	Balance       decimal.Decimal `json:"balance"`
	Executor      *Identity       `json:"executor,omitempty"`
	HistoryTarget *string         `json:"history_target,omitempty"`
	Paused        bool            `json:"paused"`
}

// Spender returns the identity allowed to spend for algorithms:
// the executor when one is set, otherwise the owner.
func (v *Vault) Spender() Identity {
	if v.Executor != nil {
		return *v.Executor
	}
	return v.Owner
}

// SpendReceipt is the outcome of an algorithm spend. The balance change is
// committed whenever a receipt is returned; the audit append may still have failed.
type SpendReceipt struct {
	Vault         *Vault  `json:"vault"`
	AuditSequence *uint32 `json:"audit_sequence,omitempty"`
	AuditError    string  `json:"audit_error,omitempty"`
}

// VaultAddress derives the ledger address holding a vault's funds from its
// kind and id. The result is off-curve, so it never names an account.
func VaultAddress(kind VaultKind, vaultID string) (Identity, error) {
	return DeriveAddress(NSVault, string(kind), vaultID)
}
