package models

// CodeResult is one generated Steam Guard login code together with the share
// of the current 30-second window that is still ahead. Results are ephemeral:
// they are recomputed on every call and never persisted.
type CodeResult struct {
	// Code is the 5-character login code over the Steam Guard alphabet.
	Code string

	// FractionRemaining is (30 - t mod 30) / 30 for the generation time t:
	// 1.0 right at a window boundary, approaching 0 just before the next.
	FractionRemaining float64
}
