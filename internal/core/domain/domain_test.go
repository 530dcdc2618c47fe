package domain

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T, seed byte) Identity {
	t.Helper()
	key := ed25519.NewKeyFromSeed(bytes32(seed))
	id, err := IdentityFromPublicKey(key.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return id
}

func bytes32(b byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestParseIdentity(t *testing.T) {
	acct := testAccount(t, 1)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"account key", acct.String(), false},
		{"system program", "11111111111111111111111111111111", false},
		{"empty", "", true},
		{"not base58", "0OIl", true},
		{"too short", "3mJr7AoUXx2Wqd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentity(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, id.String())
		})
	}
}

func TestIdentity_IsAccount(t *testing.T) {
	acct := testAccount(t, 7)
	assert.True(t, acct.IsAccount())
	assert.Len(t, acct.Bytes(), IdentitySize)

	addr, err := DeriveAddress("vault", "v-1")
	require.NoError(t, err)
	assert.False(t, addr.IsAccount(), "derived addresses must be off-curve")

	assert.False(t, Identity("garbage").IsAccount())
	assert.Nil(t, Identity("garbage").Bytes())
	assert.True(t, Identity("").IsZero())
}

func TestDeriveAddress(t *testing.T) {
	a1, err := DeriveAddress("vault", "alpha")
	require.NoError(t, err)
	a2, err := DeriveAddress("vault", "alpha")
	require.NoError(t, err)
	assert.Equal(t, a1, a2, "derivation must be deterministic")

	b, err := DeriveAddress("vaulta", "lpha")
	require.NoError(t, err)
	assert.NotEqual(t, a1, b, "seed boundaries must matter")

	_, err = ParseIdentity(a1.String())
	assert.NoError(t, err)
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFrom(context.Background())
	assert.False(t, ok)

	acct := testAccount(t, 3)
	ctx := WithPrincipal(context.Background(), acct)
	got, ok := PrincipalFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, acct, got)

	_, ok = PrincipalFrom(WithPrincipal(context.Background(), ""))
	assert.False(t, ok)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "vault/v1/balance", VaultKey("v1", "balance"))
	assert.Equal(t, "history/h1/count/0000000007", HistoryCountKey("h1", 7))
	assert.Equal(t, "history/h1/record/0000000007/0000000012", HistoryRecordKey("h1", 7, 12))
	assert.Equal(t, "registry/algo/0000000003", AlgorithmKey(3))
	assert.Equal(t, "factory/admin", FactoryKey("admin"))
	assert.Equal(t, "asset/USDC/balance/abc", AssetBalanceKey("USDC", "abc"))

	assert.Less(t, Seq(9), Seq(10), "padded sequences sort numerically")
	assert.Equal(t, "4294967295", Seq(^uint32(0)))
}

func TestIsPositiveAmount(t *testing.T) {
	tests := []struct {
		name  string
		value decimal.Decimal
		want  bool
	}{
		{"one", decimal.NewFromInt(1), true},
		{"zero", decimal.Zero, false},
		{"negative", decimal.NewFromInt(-5), false},
		{"fractional", decimal.RequireFromString("1.5"), false},
		{"max", MaxAmount, true},
		{"above max", MaxAmount.Add(decimal.NewFromInt(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPositiveAmount(tt.value))
		})
	}
}

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(decimal.NewFromInt(40), decimal.NewFromInt(60))
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(100)))

	_, err = CheckedAdd(MaxAmount, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrAmountOverflow)

	_, err = CheckedAdd(MinAmount, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrAmountOverflow)
}

func TestVaultKind_Capabilities(t *testing.T) {
	tests := []struct {
		kind  VaultKind
		valid bool
		caps  Capabilities
	}{
		{VaultKindTreasury, true, Capabilities{AuditLink: true}},
		{VaultKindCreator, true, Capabilities{PauseSwitch: true}},
		{VaultKind("OTHER"), false, Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.kind.Valid())
			assert.Equal(t, tt.caps, tt.kind.Capabilities())
		})
	}
}

func TestVault_Spender(t *testing.T) {
	owner := testAccount(t, 1)
	exec := testAccount(t, 2)

	v := &Vault{Owner: owner}
	assert.Equal(t, owner, v.Spender())

	v.Executor = &exec
	assert.Equal(t, exec, v.Spender())
}

func TestCreatorVaultID(t *testing.T) {
	c1, err := CreatorVaultID(testAccount(t, 1))
	require.NoError(t, err)
	c2, err := CreatorVaultID(testAccount(t, 2))
	require.NoError(t, err)
	assert.NotEqual(t, c1, c2)

	assert.True(t, IsReservedVaultID(c1))
	assert.True(t, IsReservedVaultID(c2))
	assert.LessOrEqual(t, len(c1), 64, "must fit the vault id limit")
}

func TestIsReservedVaultID(t *testing.T) {
	assert.True(t, IsReservedVaultID("creator-anything"))
	assert.False(t, IsReservedVaultID("main"))
	assert.False(t, IsReservedVaultID("creator"))
	assert.False(t, IsReservedVaultID("my-creator-vault"))

	// A bare derived address, as ids looked before the prefix, is not reserved
	// and does not collide with the factory's id for the same creator.
	bare, err := DeriveAddress("creator_vault", testAccount(t, 1).String())
	require.NoError(t, err)
	assigned, err := CreatorVaultID(testAccount(t, 1))
	require.NoError(t, err)
	assert.False(t, IsReservedVaultID(bare.String()))
	assert.NotEqual(t, bare.String(), assigned)
}

func TestVaultAddress(t *testing.T) {
	treasury, err := VaultAddress(VaultKindTreasury, "main")
	require.NoError(t, err)
	again, err := VaultAddress(VaultKindTreasury, "main")
	require.NoError(t, err)
	creator, err := VaultAddress(VaultKindCreator, "main")
	require.NoError(t, err)

	assert.Equal(t, treasury, again)
	assert.NotEqual(t, treasury, creator, "kind is part of the derivation")
	assert.False(t, treasury.IsAccount())
	assert.False(t, creator.IsAccount())
}

func TestNewVaultEvent(t *testing.T) {
	v := &Vault{ID: "v1", Balance: decimal.NewFromInt(10)}
	ev := NewVaultEvent(VaultEventDeposit, v, "actor")

	assert.Equal(t, VaultEventDeposit, ev.Type)
	assert.Equal(t, "v1", ev.VaultID)
	assert.True(t, ev.Balance.Equal(decimal.NewFromInt(10)))
	assert.False(t, ev.OccurredAt.IsZero())
}
