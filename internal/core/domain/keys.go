package domain

import (
	"fmt"
	"strings"
)

// Ledger key namespaces.
const (
	NSVault    = "vault"
	NSHistory  = "history"
	NSRegistry = "registry"
	NSFactory  = "factory"
	NSAsset    = "asset"
)

// Key composes a ledger key from its parts.
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

// Seq renders n zero-padded so lexical key order matches numeric order.
func Seq(n uint32) string {
	return fmt.Sprintf("%010d", n)
}

func VaultKey(vaultID, field string) string {
	return Key(NSVault, vaultID, field)
}

func HistoryKey(logID string, parts ...string) string {
	return Key(append([]string{NSHistory, logID}, parts...)...)
}

func HistoryCountKey(logID string, subject uint32) string {
	return HistoryKey(logID, "count", Seq(subject))
}

func HistoryRecordKey(logID string, subject, seq uint32) string {
	return HistoryKey(logID, "record", Seq(subject), Seq(seq))
}

func RegistryKey(parts ...string) string {
	return Key(append([]string{NSRegistry}, parts...)...)
}

func AlgorithmKey(id uint32) string {
	return RegistryKey("algo", Seq(id))
}

func FactoryKey(parts ...string) string {
	return Key(append([]string{NSFactory}, parts...)...)
}

func AssetBalanceKey(asset string, holder Identity) string {
	return Key(NSAsset, asset, "balance", holder.String())
}
