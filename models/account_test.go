package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountUnmarshal_AllFields(t *testing.T) {
	body := `{
		"shared_secret": "c2hhcmVk",
		"identity_secret": "aWRlbnRpdHk=",
		"account_name": "alice",
		"device_id": "android:1b2f",
		"Session": {"SteamID": 76561198000000001}
	}`

	var account Account
	require.NoError(t, json.Unmarshal([]byte(body), &account))

	assert.Equal(t, "c2hhcmVk", account.SharedSecret)
	assert.Equal(t, "aWRlbnRpdHk=", account.IdentitySecret)
	assert.Equal(t, "alice", account.AccountName)
	assert.Equal(t, "android:1b2f", account.DeviceID)
	assert.Equal(t, "76561198000000001", account.SteamID)
}

func TestAccountUnmarshal_MandatoryFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing shared_secret", `{"account_name":"alice"}`},
		{"missing account_name", `{"shared_secret":"c2hhcmVk"}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var account Account
			err := json.Unmarshal([]byte(tt.body), &account)
			assert.ErrorIs(t, err, ErrAccountFileInvalid)
		})
	}
}

func TestAccountUnmarshal_SteamIDPriority(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "session object wins over both top-level forms",
			body: `{"shared_secret":"eA==","account_name":"a","Session":{"SteamID":111},"steamid":222}`,
			want: "111",
		},
		{
			name: "top-level number wins over nothing else",
			body: `{"shared_secret":"eA==","account_name":"a","steamid":76561198000000002}`,
			want: "76561198000000002",
		},
		{
			name: "top-level string accepted",
			body: `{"shared_secret":"eA==","account_name":"a","steamid":"76561198000000003"}`,
			want: "76561198000000003",
		},
		{
			name: "session without SteamID falls through to top-level",
			body: `{"shared_secret":"eA==","account_name":"a","Session":{},"steamid":"444"}`,
			want: "444",
		},
		{
			name: "absent everywhere",
			body: `{"shared_secret":"eA==","account_name":"a"}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var account Account
			require.NoError(t, json.Unmarshal([]byte(tt.body), &account))
			assert.Equal(t, tt.want, account.SteamID)
		})
	}
}

func TestAccountBundled(t *testing.T) {
	assert.True(t, Account{}.Bundled())
	assert.False(t, Account{SourceFilename: "alice.maFile"}.Bundled())
}

func TestParseConfirmationType(t *testing.T) {
	assert.Equal(t, ConfirmationGeneric, ParseConfirmationType(0))
	assert.Equal(t, ConfirmationTrade, ParseConfirmationType(1))
	assert.Equal(t, ConfirmationMarket, ParseConfirmationType(2))
	assert.Equal(t, ConfirmationUnknown, ParseConfirmationType(3))
	assert.Equal(t, ConfirmationUnknown, ParseConfirmationType(42))
	assert.Equal(t, ConfirmationUnknown, ParseConfirmationType(-1))
}

func TestSessionAuthenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())

	session := sessionWithCookies("sessionid", "steamLoginSecure")
	assert.True(t, session.Authenticated())

	session = sessionWithCookies("sessionid", "browserid")
	assert.False(t, session.Authenticated())
}
