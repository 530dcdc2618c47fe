package handler

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"delegated-treasury/internal/adapter/http/middleware"
	"delegated-treasury/internal/adapter/metrics"
	"delegated-treasury/internal/adapter/storage/memory"
	"delegated-treasury/internal/core/domain"
	"delegated-treasury/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actor struct {
	priv ed25519.PrivateKey
	id   domain.Identity
}

func newActor(t *testing.T, seed byte) *actor {
	t.Helper()
	s := make([]byte, ed25519.SeedSize)
	s[0] = seed
	s[1] = 0xE2
	priv := ed25519.NewKeyFromSeed(s)
	id, err := domain.IdentityFromPublicKey(priv.Public().(ed25519.PublicKey))
	require.NoError(t, err)
	return &actor{priv: priv, id: id}
}

type testServer struct {
	router *gin.Engine
	sigSvc *service.Ed25519SignatureService
}

func newTestServer(t *testing.T, platformAdmin domain.Identity) *testServer {
	t.Helper()
	log := zerolog.Nop()
	store := memory.NewLedgerStore()
	auth := service.NewContextAuthorizer()
	assets := service.NewAssetLedger()
	m := metrics.New()

	auditSvc := service.NewAuditLogService(store, auth, nil, log)
	vaultSvc := service.NewVaultService(store, assets, auth, auditSvc, nil, m, log)
	sigSvc := service.NewEd25519SignatureService()

	router := SetupRouter(RouterDeps{
		VaultSvc:       vaultSvc,
		AuditLogSvc:    auditSvc,
		RegistrySvc:    service.NewRegistryService(store, auth, log),
		FactorySvc:     service.NewFactoryService(store, vaultSvc, auth, log),
		AssetSvc:       service.NewAssetService(store, assets, auth, platformAdmin, log),
		SigSvc:         sigSvc,
		TokenSvc:       service.NewJWTTokenService("router-test-secret", time.Hour, "delegated-treasury"),
		NonceStore:     memory.NewNonceStore(),
		Auth:           middleware.AuthConfig{MaxClockDrift: 30 * time.Second, NonceTTL: time.Minute},
		RateLimitStore: memory.NewRateLimitStore(time.Minute),
		Metrics:        m,
		Logger:         log,
	})
	return &testServer{router: router, sigSvc: sigSvc}
}

// signed sends a request signed by a. A nil actor sends it unauthenticated.
func (s *testServer) signed(t *testing.T, a *actor, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if a != nil {
		ts := time.Now().Unix()
		nonce := uuid.New().String()
		urlPath := strings.SplitN(path, "?", 2)[0]
		canonical := s.sigSvc.BuildCanonicalString(method, urlPath, ts, nonce, string(raw))
		req.Header.Set(middleware.HeaderIdentity, a.id.String())
		req.Header.Set(middleware.HeaderSignature, service.SignMessage(a.priv, canonical))
		req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
		req.Header.Set(middleware.HeaderNonce, nonce)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return s.signed(t, nil, http.MethodGet, path, nil)
}

func mustOK(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	require.Less(t, w.Code, 300, "unexpected status %d: %s", w.Code, w.Body.String())
	return decodeData(t, w)
}

// ==================== End-to-End Scenario ====================

func TestRouter_TreasuryScenario(t *testing.T) {
	admin := newActor(t, 1)
	owner := newActor(t, 2)
	depositor := newActor(t, 3)
	executor := newActor(t, 4)
	recipient := newActor(t, 5)
	historian := newActor(t, 6)
	srv := newTestServer(t, admin.id)

	// Depositor needs funds in the asset.
	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/assets/USDC/mint",
		map[string]interface{}{"to": depositor.id, "amount": "100"}))

	// Vault and its audit log.
	vault := mustOK(t, srv.signed(t, owner, http.MethodPost, "/api/v1/vaults",
		map[string]interface{}{"vault_id": "main", "owner": owner.id, "asset": "USDC"}))
	vaultAddress := vault["address"].(string)

	mustOK(t, srv.signed(t, historian, http.MethodPost, "/api/v1/history",
		map[string]interface{}{"log_id": "trades", "admin": historian.id}))
	mustOK(t, srv.signed(t, historian, http.MethodPut, "/api/v1/history/trades/writer",
		map[string]interface{}{"writer": vaultAddress}))
	mustOK(t, srv.signed(t, owner, http.MethodPut, "/api/v1/vaults/main/history-target",
		map[string]interface{}{"log_id": "trades"}))

	// deposit 100 from D
	data := mustOK(t, srv.signed(t, depositor, http.MethodPost, "/api/v1/vaults/main/deposit",
		map[string]interface{}{"from": depositor.id, "amount": 100}))
	assert.Equal(t, "100", data["balance"])

	// set_executor(E)
	mustOK(t, srv.signed(t, owner, http.MethodPut, "/api/v1/vaults/main/executor",
		map[string]interface{}{"executor": executor.id}))

	// Owner can no longer spend once an executor is set.
	w := srv.signed(t, owner, http.MethodPost, "/api/v1/vaults/main/spend",
		map[string]interface{}{"algo_id": 7, "to": recipient.id, "amount": 40})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// spend_for_algo(7, X, 40, "tx1", "first") by E
	receipt := mustOK(t, srv.signed(t, executor, http.MethodPost, "/api/v1/vaults/main/spend",
		map[string]interface{}{"algo_id": 7, "to": recipient.id, "amount": 40, "reference": "tx1", "note": "first"}))
	assert.Equal(t, float64(0), receipt["audit_sequence"])
	assert.Empty(t, receipt["audit_error"])
	assert.Equal(t, "60", receipt["vault"].(map[string]interface{})["balance"])

	data = mustOK(t, srv.get(t, "/api/v1/vaults/main/balance"))
	assert.Equal(t, "60", data["balance"])

	data = mustOK(t, srv.get(t, "/api/v1/history/trades/subjects/7/count"))
	assert.Equal(t, float64(1), data["count"])

	record := mustOK(t, srv.get(t, "/api/v1/history/trades/subjects/7/records/0"))
	assert.Equal(t, float64(7), record["subject_id"])
	assert.Equal(t, "tx1", record["reference"])
	assert.Equal(t, "first", record["note"])

	data = mustOK(t, srv.get(t, "/api/v1/assets/USDC/balances/"+recipient.id.String()))
	assert.Equal(t, "40", data["balance"])

	// withdraw 50 by O
	data = mustOK(t, srv.signed(t, owner, http.MethodPost, "/api/v1/vaults/main/withdraw",
		map[string]interface{}{"to": owner.id, "amount": 50}))
	assert.Equal(t, "10", data["balance"])

	// withdraw by D fails
	w = srv.signed(t, depositor, http.MethodPost, "/api/v1/vaults/main/withdraw",
		map[string]interface{}{"to": depositor.id, "amount": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "VLT_001", decodeErrorCode(t, w))

	data = mustOK(t, srv.get(t, "/api/v1/vaults/main/balance"))
	assert.Equal(t, "10", data["balance"])

	// Overdraw leaves the balance untouched.
	w = srv.signed(t, owner, http.MethodPost, "/api/v1/vaults/main/withdraw",
		map[string]interface{}{"to": owner.id, "amount": 11})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	data = mustOK(t, srv.get(t, "/api/v1/vaults/main/balance"))
	assert.Equal(t, "10", data["balance"])

	// Operation counters are exported.
	w = srv.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `delegated_treasury_vault_operations_total{code="ok",op="spend"} 1`)
}

func TestRouter_FactoryVaultIDsAreReserved(t *testing.T) {
	admin := newActor(t, 1)
	creator := newActor(t, 2)
	squatter := newActor(t, 3)
	srv := newTestServer(t, admin.id)

	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/factory",
		map[string]interface{}{"admin": admin.id, "asset": "USDC"}))

	vaultID, err := domain.CreatorVaultID(creator.id)
	require.NoError(t, err)
	w := srv.signed(t, squatter, http.MethodPost, "/api/v1/vaults",
		map[string]interface{}{"vault_id": vaultID, "kind": "CREATOR", "owner": squatter.id, "asset": "USDC"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VLT_010", decodeErrorCode(t, w))

	vault := mustOK(t, srv.signed(t, creator, http.MethodPost, "/api/v1/factory/vaults",
		map[string]interface{}{"creator": creator.id}))
	assert.Equal(t, vaultID, vault["id"])
	assert.Equal(t, creator.id.String(), vault["owner"])
}

func TestRouter_WithdrawToVaultAddressRejected(t *testing.T) {
	admin := newActor(t, 1)
	owner := newActor(t, 2)
	srv := newTestServer(t, admin.id)

	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/assets/USDC/mint",
		map[string]interface{}{"to": owner.id, "amount": 50}))
	vault := mustOK(t, srv.signed(t, owner, http.MethodPost, "/api/v1/vaults",
		map[string]interface{}{"vault_id": "main", "owner": owner.id, "asset": "USDC"}))
	mustOK(t, srv.signed(t, owner, http.MethodPost, "/api/v1/vaults/main/deposit",
		map[string]interface{}{"from": owner.id, "amount": 50}))

	w := srv.signed(t, owner, http.MethodPost, "/api/v1/vaults/main/withdraw",
		map[string]interface{}{"to": vault["address"], "amount": 10})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	data := mustOK(t, srv.get(t, "/api/v1/vaults/main/balance"))
	assert.Equal(t, "50", data["balance"])
	data = mustOK(t, srv.get(t, "/api/v1/assets/USDC/balances/"+vault["address"].(string)))
	assert.Equal(t, "50", data["balance"])
}

func TestRouter_CreatorVaultThroughFactory(t *testing.T) {
	admin := newActor(t, 1)
	creator := newActor(t, 2)
	fan := newActor(t, 3)
	srv := newTestServer(t, admin.id)

	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/assets/USDC/mint",
		map[string]interface{}{"to": fan.id, "amount": 25}))
	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/factory",
		map[string]interface{}{"admin": admin.id, "asset": "USDC"}))

	vault := mustOK(t, srv.signed(t, creator, http.MethodPost, "/api/v1/factory/vaults",
		map[string]interface{}{"creator": creator.id}))
	vaultID := vault["id"].(string)
	assert.Equal(t, "CREATOR", vault["kind"])

	data := mustOK(t, srv.get(t, "/api/v1/factory/vaults/"+creator.id.String()))
	assert.Equal(t, vaultID, data["vault_id"])

	w := srv.signed(t, creator, http.MethodPost, "/api/v1/factory/vaults",
		map[string]interface{}{"creator": creator.id})
	assert.Equal(t, http.StatusConflict, w.Code)

	mustOK(t, srv.signed(t, fan, http.MethodPost, "/api/v1/vaults/"+vaultID+"/deposit",
		map[string]interface{}{"from": fan.id, "amount": 25}))

	mustOK(t, srv.signed(t, creator, http.MethodPut, "/api/v1/vaults/"+vaultID+"/paused",
		map[string]interface{}{"paused": true}))
	w = srv.signed(t, creator, http.MethodPost, "/api/v1/vaults/"+vaultID+"/spend",
		map[string]interface{}{"algo_id": 1, "to": fan.id, "amount": 5})
	assert.Equal(t, http.StatusLocked, w.Code)

	mustOK(t, srv.signed(t, creator, http.MethodPut, "/api/v1/vaults/"+vaultID+"/paused",
		map[string]interface{}{"paused": false}))
	receipt := mustOK(t, srv.signed(t, creator, http.MethodPost, "/api/v1/vaults/"+vaultID+"/spend",
		map[string]interface{}{"algo_id": 1, "to": fan.id, "amount": 5}))
	assert.Equal(t, "20", receipt["vault"].(map[string]interface{})["balance"])

	page := mustOK(t, srv.get(t, "/api/v1/factory/creators?offset=0&limit=10"))
	assert.Equal(t, float64(1), page["total"])
	assert.Equal(t, []interface{}{creator.id.String()}, page["items"])
}

func TestRouter_RegistryLifecycle(t *testing.T) {
	admin := newActor(t, 1)
	quant := newActor(t, 2)
	srv := newTestServer(t, admin.id)

	mustOK(t, srv.signed(t, admin, http.MethodPost, "/api/v1/registry",
		map[string]interface{}{"admin": admin.id}))

	algo := mustOK(t, srv.signed(t, quant, http.MethodPost, "/api/v1/registry/algos",
		map[string]interface{}{"owner": quant.id, "name": "momentum", "metadata_uri": "ipfs://cid"}))
	assert.Equal(t, float64(0), algo["id"])

	w := srv.signed(t, admin, http.MethodPut, "/api/v1/registry/algos/0/active",
		map[string]interface{}{"active": false})
	assert.Equal(t, http.StatusForbidden, w.Code)

	algo = mustOK(t, srv.signed(t, quant, http.MethodPut, "/api/v1/registry/algos/0/active",
		map[string]interface{}{"active": false}))
	assert.Equal(t, false, algo["active"])

	info := mustOK(t, srv.get(t, "/api/v1/registry"))
	assert.Equal(t, float64(1), info["total"])
}

// ==================== Authentication ====================

func TestRouter_WritesRequireAuthentication(t *testing.T) {
	owner := newActor(t, 2)
	srv := newTestServer(t, "")

	w := srv.signed(t, nil, http.MethodPost, "/api/v1/vaults",
		map[string]interface{}{"vault_id": "main", "owner": owner.id, "asset": "USDC"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.get(t, "/api/v1/vaults/main")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_SignatureMustMatchBody(t *testing.T) {
	owner := newActor(t, 2)
	srv := newTestServer(t, "")

	body := `{"vault_id":"main","owner":"` + owner.id.String() + `","asset":"USDC"}`
	ts := time.Now().Unix()
	canonical := srv.sigSvc.BuildCanonicalString(http.MethodPost, "/api/v1/vaults", ts, "n-1", body)

	tampered := strings.Replace(body, "USDC", "EURC", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults", strings.NewReader(tampered))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderIdentity, owner.id.String())
	req.Header.Set(middleware.HeaderSignature, service.SignMessage(owner.priv, canonical))
	req.Header.Set(middleware.HeaderTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(middleware.HeaderNonce, "n-1")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_002", decodeErrorCode(t, w))
}

func TestRouter_BearerTokenFlow(t *testing.T) {
	owner := newActor(t, 2)
	srv := newTestServer(t, "")

	tok := mustOK(t, srv.signed(t, owner, http.MethodPost, "/api/v1/auth/token", nil))
	assert.Equal(t, owner.id.String(), tok["identity"])

	raw, _ := json.Marshal(map[string]interface{}{"vault_id": "main", "owner": owner.id, "asset": "USDC"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vaults", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok["token"].(string))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRouter_TokenEndpointRejectsBearer(t *testing.T) {
	srv := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
	req.Header.Set("Authorization", "Bearer anything")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
