package models

import "time"

// ConfirmationType classifies a pending mobile confirmation. The numeric
// values are the wire values returned by the /mobileconf endpoints.
type ConfirmationType int

const (
	ConfirmationGeneric ConfirmationType = 0
	ConfirmationTrade   ConfirmationType = 1
	ConfirmationMarket  ConfirmationType = 2
	ConfirmationUnknown ConfirmationType = 3
)

// DisplayName returns a human-readable label for the confirmation type.
func (t ConfirmationType) DisplayName() string {
	switch t {
	case ConfirmationGeneric:
		return "Confirmation"
	case ConfirmationTrade:
		return "Trade"
	case ConfirmationMarket:
		return "Market"
	default:
		return "Unknown"
	}
}

// ParseConfirmationType maps a wire value onto a [ConfirmationType],
// falling back to [ConfirmationUnknown] for unrecognized values.
func ParseConfirmationType(v int) ConfirmationType {
	switch ConfirmationType(v) {
	case ConfirmationGeneric, ConfirmationTrade, ConfirmationMarket:
		return ConfirmationType(v)
	default:
		return ConfirmationUnknown
	}
}

// Confirmation is one pending action surfaced by the confirmation listing
// endpoint, awaiting an explicit allow or cancel.
type Confirmation struct {
	// ID identifies the confirmation; passed back as "cid" when acting on it.
	ID string

	// Key is the opaque correlation token ("nonce" on the wire); passed back
	// as "ck" when acting on it.
	Key string

	// Type classifies the confirmation.
	Type ConfirmationType

	// Description is a human-readable summary assembled from the listing
	// response's headline and summary rows.
	Description string

	// CapturedAt is the client-side time at which the confirmation was
	// parsed from a listing response. Used for relative-time display only.
	CapturedAt time.Time
}
