package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port/mocks"
)

var (
	tokenAddr    = domain.MustParseAddress("0x1c7d4b196cb0c7b01d743fbc6116a902379c7238")
	owner        = domain.MustParseAddress("0x00000000000000000000000000000000000000f0")
	feeRecipient = domain.MustParseAddress("0x00000000000000000000000000000000000000fe")
	creator      = domain.MustParseAddress("0x00000000000000000000000000000000000000c1")
	beneficiary  = domain.MustParseAddress("0x00000000000000000000000000000000000000b1")
	donor        = domain.MustParseAddress("0x00000000000000000000000000000000000000d1")
)

type testServer struct {
	t     *testing.T
	srv   *httptest.Server
	auth  *Authenticator
	token *memory.Token

	mu  sync.Mutex
	now time.Time
}

func (ts *testServer) clock() time.Time {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.now
}

func (ts *testServer) advance(d time.Duration) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.now = ts.now.Add(d)
}

func newTestServer(t *testing.T, opts ...Option) *testServer {
	t.Helper()
	ts := &testServer{t: t, now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	clock := ts.clock

	ts.token = memory.NewToken(tokenAddr, owner)
	store := memory.NewStore(ts.token)
	factory, err := usecase.NewFactoryUseCase(store, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           250,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	}, usecase.WithClock(clock))
	require.NoError(t, err)
	campaigns, err := usecase.NewCampaignUseCase(store, feeRecipient, usecase.WithClock(clock))
	require.NoError(t, err)

	ts.auth = NewAuthenticator("test-secret", "crowdfund-test")
	h := NewHandler(Services{
		Factory:   factory,
		Campaigns: campaigns,
		Reports:   usecase.NewReportUseCase(factory, campaigns, usecase.WithClock(clock)),
		Token:     ts.token,
	}, ts.auth, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	ts.srv = httptest.NewServer(h.Router())
	t.Cleanup(ts.srv.Close)
	return ts
}

// do sends body as JSON, authenticated as caller unless caller is empty,
// and decodes the response into out when it is non-nil.
func (ts *testServer) do(method, path string, caller domain.Address, body any, out any) int {
	ts.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(ts.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.srv.URL+path, &buf)
	require.NoError(ts.t, err)
	if caller != "" {
		tok, err := ts.auth.Issue(caller, time.Hour)
		require.NoError(ts.t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (ts *testServer) createCampaign(goal string) domain.Address {
	ts.t.Helper()
	var created createdResponse
	status := ts.do(http.MethodPost, "/api/v1/campaigns", creator, createCampaignRequest{
		Title:        "Clean water",
		Description:  "Wells for the village",
		GoalAmount:   goal,
		DurationDays: 30,
		Beneficiary:  beneficiary.String(),
	}, &created)
	require.Equal(ts.t, http.StatusCreated, status)
	return created.Address
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ref := ts.createCampaign("1000")
	ctx := context.Background()
	require.NoError(t, ts.token.Faucet(ctx, donor, domain.MustParseUnits("1000")))

	var valid map[string]bool
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/"+ref.String()+"/valid", "", nil, &valid))
	assert.True(t, valid["valid"])

	// Donating before approving fails without changing the ledger.
	var errResp errorResponse
	status := ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/donations", donor, amountRequest{Amount: "100"}, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, errResp.Error, "allowance")

	require.Equal(t, http.StatusNoContent, ts.do(http.MethodPost, "/api/v1/token/approve", donor,
		approveRequest{Spender: ref.String(), Amount: "1000"}, nil))

	var receipt donationResponse
	require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/donations", donor,
		amountRequest{Amount: "100.5"}, &receipt))
	assert.Equal(t, int64(100_500_000), receipt.TotalRaised.Units)
	assert.Equal(t, "100.500000", receipt.Amount.Display)
	assert.Equal(t, "active", receipt.Status)

	var details detailsResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/"+ref.String(), "", nil, &details))
	assert.Equal(t, int64(1), details.DonorCount)
	assert.Equal(t, "1000.000000", details.GoalAmount.Display)

	var progress map[string]int64
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/"+ref.String()+"/progress", "", nil, &progress))
	assert.Equal(t, int64(1005), progress["progress_bps"])

	var donors struct {
		Donors []donorResponse `json:"donors"`
	}
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/"+ref.String()+"/donors?limit=10", "", nil, &donors))
	require.Len(t, donors.Donors, 1)
	assert.Equal(t, donor, donors.Donors[0].Donor)

	// Still active: the beneficiary must wait.
	status = ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/withdraw", beneficiary, nil, &errResp)
	assert.Equal(t, http.StatusConflict, status)

	ts.advance(31 * 24 * time.Hour)

	status = ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/withdraw", creator, nil, &errResp)
	assert.Equal(t, http.StatusForbidden, status)

	var withdrawal withdrawalResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/withdraw", beneficiary, nil, &withdrawal))
	assert.Equal(t, int64(97_987_500), withdrawal.NetAmount.Units)
	assert.Equal(t, int64(2_512_500), withdrawal.FeeAmount.Units)

	var bal balanceResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/token/balances/"+beneficiary.String(), "", nil, &bal))
	assert.Equal(t, withdrawal.NetAmount, bal.Balance)

	var report reportResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/reports/campaigns", "", nil, &report))
	require.Len(t, report.Campaigns, 1)
	assert.Equal(t, "withdrawn", report.Campaigns[0].Details.Status)
	assert.Equal(t, int64(1), report.Summary.TotalCampaigns)
}

func TestCreateCampaignOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status := ts.do(http.MethodPost, "/api/v1/campaigns", "", createCampaignRequest{Title: "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	tests := []struct {
		name string
		req  createCampaignRequest
		want string
	}{
		{"empty title", createCampaignRequest{Description: "d", GoalAmount: "1", DurationDays: 1, Beneficiary: beneficiary.String()}, domain.ErrEmptyTitle.Error()},
		{"malformed goal", createCampaignRequest{Title: "t", Description: "d", GoalAmount: "lots", DurationDays: 1, Beneficiary: beneficiary.String()}, domain.ErrInvalidGoal.Error()},
		{"long duration", createCampaignRequest{Title: "t", Description: "d", GoalAmount: "1", DurationDays: 400, Beneficiary: beneficiary.String()}, domain.ErrInvalidDuration.Error()},
		{"zero beneficiary", createCampaignRequest{Title: "t", Description: "d", GoalAmount: "1", DurationDays: 1, Beneficiary: domain.ZeroAddress.String()}, domain.ErrInvalidBeneficiary.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp errorResponse
			status := ts.do(http.MethodPost, "/api/v1/campaigns", creator, tt.req, &errResp)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.want, errResp.Error)
		})
	}

	var list struct {
		Campaigns []domain.Address `json:"campaigns"`
		Total     int64            `json:"total"`
	}
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns", "", nil, &list))
	assert.Empty(t, list.Campaigns)
	assert.Zero(t, list.Total)
}

func TestDeactivateOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	ref := ts.createCampaign("10")

	var errResp errorResponse
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/deactivate", donor, nil, &errResp))
	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/deactivate", creator, nil, nil))
	assert.Equal(t, http.StatusConflict, ts.do(http.MethodPost, "/api/v1/campaigns/"+ref.String()+"/deactivate", creator, nil, &errResp))
	assert.Equal(t, domain.ErrAlreadyInactive.Error(), errResp.Error)

	var list struct {
		Campaigns []domain.Address `json:"campaigns"`
	}
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns?filter=active", "", nil, &list))
	assert.Empty(t, list.Campaigns)
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns?creator="+creator.String(), "", nil, &list))
	assert.Equal(t, []domain.Address{ref}, list.Campaigns)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/campaigns?filter=mine", "", nil, nil))
}

func TestUnknownCampaign(t *testing.T) {
	ts := newTestServer(t)
	unknown := "0x00000000000000000000000000000000000000ee"

	var valid map[string]bool
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/"+unknown+"/valid", "", nil, &valid))
	assert.False(t, valid["valid"])
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/campaigns/not-an-address/valid", "", nil, &valid))
	assert.False(t, valid["valid"])

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/v1/campaigns/"+unknown, "", nil, nil))
	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/v1/campaigns/0x12", "", nil, nil))
}

func TestDevRoutes(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodPost, "/api/v1/token/faucet", "", faucetRequest{To: donor.String(), Amount: "5"}, nil))

	ts = newTestServer(t, WithDevRoutes())
	var bal balanceResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/v1/token/faucet", "", faucetRequest{To: donor.String(), Amount: "5"}, &bal))
	assert.Equal(t, "5.000000", bal.Balance.Display)

	var tok map[string]string
	require.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/v1/auth/dev-token", "", devTokenRequest{Address: donor.String()}, &tok))
	caller, err := ts.auth.Verify(tok["token"])
	require.NoError(t, err)
	assert.Equal(t, donor, caller)

	var cooldown map[string]int64
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/token/faucet/cooldown/"+donor.String(), "", nil, &cooldown))
	assert.Zero(t, cooldown["cooldown_seconds"])

	var meta tokenResponse
	require.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/api/v1/token", "", nil, &meta))
	assert.Equal(t, tokenAddr, meta.Address)
	assert.Equal(t, "USDC", meta.Symbol)
}

func TestAuthenticatorRejects(t *testing.T) {
	a := NewAuthenticator("secret", "crowdfund")

	expired, err := a.Issue(donor, -time.Hour)
	require.NoError(t, err)
	_, err = a.Verify(expired)
	require.Error(t, err)

	foreign, err := NewAuthenticator("other", "crowdfund").Issue(donor, time.Hour)
	require.NoError(t, err)
	_, err = a.Verify(foreign)
	require.Error(t, err)

	wrongIssuer, err := NewAuthenticator("secret", "someone-else").Issue(donor, time.Hour)
	require.NoError(t, err)
	_, err = a.Verify(wrongIssuer)
	require.Error(t, err)

	zero, err := a.Issue(domain.ZeroAddress, time.Hour)
	require.NoError(t, err)
	_, err = a.Verify(zero)
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Get(mock.Anything, mock.Anything).Return(domain.Campaign{}, errors.New("pq: connection refused"))

	factory, err := usecase.NewFactoryUseCase(repo, domain.FactorySettings{
		Token:            tokenAddr,
		FeeBps:           250,
		FeeRecipient:     feeRecipient,
		DefaultAuthority: domain.WithdrawByBeneficiary,
	})
	require.NoError(t, err)
	h := NewHandler(Services{Factory: factory}, NewAuthenticator("s", "i"), slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+donor.String()+"/info", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusOf(domain.ErrUnauthenticated))
	assert.Equal(t, http.StatusForbidden, statusOf(domain.ErrNotCreator))
	assert.Equal(t, http.StatusConflict, statusOf(domain.ErrDeadlinePassed))
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(domain.ErrInsufficientBalance))
	assert.Equal(t, http.StatusNotFound, statusOf(domain.ErrCampaignNotFound))
	assert.Equal(t, http.StatusBadRequest, statusOf(errInvalidJSON))
}
