package models

// ConfirmationQuery carries the signed query parameters shared by the
// /getlist and /ajaxop endpoints.
type ConfirmationQuery struct {
	// DeviceID is sent as "p".
	DeviceID string
	// SteamID is sent as "a".
	SteamID string
	// Signature is the base64 confirmation hash, sent as "k".
	Signature string
	// Time is the unix time the signature covers, sent as "t".
	Time int64
	// Tag is the signed operation tag, sent as "tag". Always "conf" for
	// listing and acting.
	Tag string
}

// RawConfirmation is the typed intermediate representation of one record in
// a listing response, decoded once before mapping into [Confirmation].
// Optional fields stay optional here so that drop-on-missing-field decisions
// are made by the parser, not by the JSON decoder.
type RawConfirmation struct {
	// ID identifies the confirmation. Mandatory; records without it are
	// dropped by the parser.
	ID string `json:"id"`

	// Nonce is the correlation token needed to act on the confirmation.
	// Mandatory; records without it are dropped by the parser.
	Nonce string `json:"nonce"`

	// Type is the wire confirmation type. Absent or unrecognized values map
	// to the unknown type.
	Type *int `json:"type"`

	// Headline is the short summary line. Defaults to empty.
	Headline string `json:"headline"`

	// Summary is a list of single-key rows ({"0": "..."}) elaborating on the
	// headline.
	Summary []map[string]string `json:"summary"`
}

// ConfirmationListResponse is the body of a /getlist reply.
type ConfirmationListResponse struct {
	Success bool              `json:"success"`
	Conf    []RawConfirmation `json:"conf"`
}

// ConfirmationActionResponse is the body of an /ajaxop reply.
type ConfirmationActionResponse struct {
	Success bool `json:"success"`
}
