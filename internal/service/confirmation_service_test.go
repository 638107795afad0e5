// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-steam-guard/internal/adapter"
	"github.com/MKhiriev/go-steam-guard/internal/config"
	"github.com/MKhiriev/go-steam-guard/internal/crypto"
	"github.com/MKhiriev/go-steam-guard/internal/logger"
	"github.com/MKhiriev/go-steam-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConfirmationAdapter replays canned responses and records the last call.
type stubConfirmationAdapter struct {
	mu sync.Mutex

	listResponse models.ConfirmationListResponse
	listErr      error
	actResponse  models.ConfirmationActionResponse
	actErr       error

	listCalls int
	actCalls  int
	gotQuery  models.ConfirmationQuery
	gotOp     string
	gotConf   models.Confirmation

	// when non-nil, GetList blocks until the channel is closed
	listGate chan struct{}
}

func (a *stubConfirmationAdapter) GetList(_ context.Context, query models.ConfirmationQuery, _ models.Session) (models.ConfirmationListResponse, error) {
	a.mu.Lock()
	a.listCalls++
	a.gotQuery = query
	gate := a.listGate
	resp, err := a.listResponse, a.listErr
	a.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return resp, err
}

func (a *stubConfirmationAdapter) Act(_ context.Context, op string, confirmation models.Confirmation, query models.ConfirmationQuery, _ models.Session) (models.ConfirmationActionResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.actCalls++
	a.gotOp = op
	a.gotConf = confirmation
	a.gotQuery = query
	return a.actResponse, a.actErr
}

func (a *stubConfirmationAdapter) listCallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listCalls
}

const testIdentitySecret = "YWJjZGVmZ2hpamtsbW5vcHFyc3Q="

func confirmableAccount() models.Account {
	return models.Account{
		AccountName:    "gordon",
		SharedSecret:   "AAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		IdentitySecret: testIdentitySecret,
		DeviceID:       "android:1b2f",
		SteamID:        "76561198000000001",
	}
}

func authenticatedSession() models.Session {
	return models.Session{Cookies: []*http.Cookie{
		{Name: "sessionid", Value: "abc"},
		{Name: "steamLoginSecure", Value: "token"},
	}}
}

func newTestService(stub *stubConfirmationAdapter) *confirmationService {
	svc := NewConfirmationService(crypto.NewGuardService(), stub, config.ClientWorkers{RelistDelay: 5 * time.Millisecond}, logger.Nop())
	return svc.(*confirmationService)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestConfirmationServiceList_SignedQuery(t *testing.T) {
	stub := &stubConfirmationAdapter{listResponse: models.ConfirmationListResponse{Success: true}}
	svc := newTestService(stub)
	svc.now = func() time.Time { return time.Unix(1234567890, 0) }

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	require.NoError(t, err)

	assert.Equal(t, "android:1b2f", stub.gotQuery.DeviceID)
	assert.Equal(t, "76561198000000001", stub.gotQuery.SteamID)
	assert.Equal(t, int64(1234567890), stub.gotQuery.Time)
	assert.Equal(t, "conf", stub.gotQuery.Tag)
	// precomputed HMAC-SHA1 signature for (testIdentitySecret, 1234567890, "conf")
	assert.Equal(t, "dmA2/U1NRy/d1vxi4AuHYtj9yNY=", stub.gotQuery.Signature)
}

func TestConfirmationServiceList_EmptySuccessClearsList(t *testing.T) {
	stub := &stubConfirmationAdapter{listResponse: models.ConfirmationListResponse{Success: true}}
	svc := newTestService(stub)
	svc.confirmations = []models.Confirmation{{ID: "stale", Key: "k"}}

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	require.NoError(t, err)

	assert.Empty(t, svc.Confirmations())
	assert.Equal(t, "no active confirmations", svc.Status())
	assert.False(t, svc.Loading())
}

func TestConfirmationServiceList_ReplacesList(t *testing.T) {
	typeTrade := 1
	stub := &stubConfirmationAdapter{listResponse: models.ConfirmationListResponse{
		Success: true,
		Conf: []models.RawConfirmation{
			{ID: "9001", Nonce: "k-9001", Type: &typeTrade, Headline: "Trade offer"},
			{ID: "9002", Nonce: "k-9002"},
		},
	}}
	svc := newTestService(stub)
	svc.confirmations = []models.Confirmation{{ID: "stale", Key: "k"}}

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	require.NoError(t, err)

	got := svc.Confirmations()
	require.Len(t, got, 2)
	assert.Equal(t, "9001", got[0].ID)
	assert.Equal(t, models.ConfirmationTrade, got[0].Type)
	assert.Equal(t, "9002", got[1].ID)
	assert.Equal(t, "2 pending confirmations", svc.Status())
}

func TestConfirmationServiceList_TransportFailurePreservesList(t *testing.T) {
	stub := &stubConfirmationAdapter{listErr: adapter.ErrTransport}
	svc := newTestService(stub)
	existing := []models.Confirmation{{ID: "9001", Key: "k-9001"}}
	svc.confirmations = existing

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	require.ErrorIs(t, err, adapter.ErrTransport)

	assert.Equal(t, existing, svc.Confirmations())
	assert.Equal(t, "failed to load confirmations", svc.Status())
}

func TestConfirmationServiceList_ServerRejectedPreservesList(t *testing.T) {
	stub := &stubConfirmationAdapter{listResponse: models.ConfirmationListResponse{Success: false}}
	svc := newTestService(stub)
	existing := []models.Confirmation{{ID: "9001", Key: "k-9001"}}
	svc.confirmations = existing

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	require.ErrorIs(t, err, ErrServerRejected)

	assert.Equal(t, existing, svc.Confirmations())
	assert.Equal(t, "failed to load confirmations", svc.Status())
}

func TestConfirmationServiceList_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Account)
	}{
		{"no identity secret", func(a *models.Account) { a.IdentitySecret = "" }},
		{"no device id", func(a *models.Account) { a.DeviceID = "" }},
		{"no steamid", func(a *models.Account) { a.SteamID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubConfirmationAdapter{}
			svc := newTestService(stub)

			account := confirmableAccount()
			tt.mutate(&account)

			err := svc.List(context.Background(), account, authenticatedSession())
			require.ErrorIs(t, err, ErrMissingCredential)
			assert.Zero(t, stub.listCallCount(), "no network call on a credential failure")
			assert.False(t, svc.Loading())
		})
	}
}

func TestConfirmationServiceList_UnauthenticatedSession(t *testing.T) {
	stub := &stubConfirmationAdapter{}
	svc := newTestService(stub)

	err := svc.List(context.Background(), confirmableAccount(), models.Session{})
	require.ErrorIs(t, err, ErrSessionNotAuthenticated)
	assert.Zero(t, stub.listCallCount())
}

func TestConfirmationServiceList_RejectsOverlap(t *testing.T) {
	gate := make(chan struct{})
	stub := &stubConfirmationAdapter{
		listResponse: models.ConfirmationListResponse{Success: true},
		listGate:     gate,
	}
	svc := newTestService(stub)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	}()

	require.Eventually(t, svc.Loading, time.Second, time.Millisecond)

	err := svc.List(context.Background(), confirmableAccount(), authenticatedSession())
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(gate)
	require.NoError(t, <-firstDone)
	assert.False(t, svc.Loading())
}

// ── Accept / Decline ─────────────────────────────────────────────────────────

func TestConfirmationServiceAccept_RemovesAndRelists(t *testing.T) {
	stub := &stubConfirmationAdapter{
		actResponse:  models.ConfirmationActionResponse{Success: true},
		listResponse: models.ConfirmationListResponse{Success: true},
	}
	svc := newTestService(stub)
	svc.relistDelay = 200 * time.Millisecond // keep the re-list out of the direct assertions
	svc.confirmations = []models.Confirmation{
		{ID: "9001", Key: "k-9001"},
		{ID: "9002", Key: "k-9002"},
	}

	err := svc.Accept(context.Background(), models.Confirmation{ID: "9001", Key: "k-9001"}, confirmableAccount(), authenticatedSession())
	require.NoError(t, err)

	assert.Equal(t, adapter.OperationAllow, stub.gotOp)
	assert.Equal(t, "9001", stub.gotConf.ID)

	got := svc.Confirmations()
	require.Len(t, got, 1)
	assert.Equal(t, "9002", got[0].ID)
	assert.Equal(t, "accepted", svc.Status())

	// reconciling re-list fires after the configured delay
	require.Eventually(t, func() bool { return stub.listCallCount() == 1 }, time.Second, time.Millisecond)
}

func TestConfirmationServiceDecline_UsesCancelOperation(t *testing.T) {
	stub := &stubConfirmationAdapter{
		actResponse:  models.ConfirmationActionResponse{Success: true},
		listResponse: models.ConfirmationListResponse{Success: true},
	}
	svc := newTestService(stub)
	svc.relistDelay = 200 * time.Millisecond
	svc.confirmations = []models.Confirmation{{ID: "9001", Key: "k-9001"}}

	err := svc.Decline(context.Background(), models.Confirmation{ID: "9001", Key: "k-9001"}, confirmableAccount(), authenticatedSession())
	require.NoError(t, err)

	assert.Equal(t, adapter.OperationCancel, stub.gotOp)
	assert.Empty(t, svc.Confirmations())
	assert.Equal(t, "declined", svc.Status())
}

func TestConfirmationServiceAccept_ServerRejectedKeepsConfirmation(t *testing.T) {
	stub := &stubConfirmationAdapter{actResponse: models.ConfirmationActionResponse{Success: false}}
	svc := newTestService(stub)
	existing := []models.Confirmation{{ID: "9001", Key: "k-9001"}}
	svc.confirmations = existing

	err := svc.Accept(context.Background(), existing[0], confirmableAccount(), authenticatedSession())
	require.ErrorIs(t, err, ErrServerRejected)

	assert.Equal(t, existing, svc.Confirmations())
	assert.Equal(t, "failed to accept confirmation", svc.Status())
	assert.Zero(t, stub.listCallCount(), "no re-list after a failed action")
}

func TestConfirmationServiceAccept_TransportFailureKeepsConfirmation(t *testing.T) {
	stub := &stubConfirmationAdapter{actErr: adapter.ErrTransport}
	svc := newTestService(stub)
	existing := []models.Confirmation{{ID: "9001", Key: "k-9001"}}
	svc.confirmations = existing

	err := svc.Accept(context.Background(), existing[0], confirmableAccount(), authenticatedSession())
	require.ErrorIs(t, err, adapter.ErrTransport)

	assert.Equal(t, existing, svc.Confirmations())
	assert.Equal(t, "failed to accept confirmation", svc.Status())
}

func TestConfirmationServiceAccept_MissingCredentials(t *testing.T) {
	stub := &stubConfirmationAdapter{}
	svc := newTestService(stub)

	account := confirmableAccount()
	account.DeviceID = ""

	err := svc.Accept(context.Background(), models.Confirmation{ID: "9001", Key: "k"}, account, authenticatedSession())
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Zero(t, stub.actCalls)
}
