package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-steam-guard/models"
)

// parseConfirmations maps raw list-response records into domain
// confirmations. Records missing an id or a nonce are dropped without
// affecting the rest of the batch. capturedAt is stamped uniformly onto every
// confirmation produced from one call.
func parseConfirmations(raw []models.RawConfirmation, capturedAt time.Time) []models.Confirmation {
	out := make([]models.Confirmation, 0, len(raw))
	for _, record := range raw {
		if record.ID == "" || record.Nonce == "" {
			continue
		}

		confirmationType := models.ConfirmationUnknown
		if record.Type != nil {
			confirmationType = models.ParseConfirmationType(*record.Type)
		}

		out = append(out, models.Confirmation{
			ID:          record.ID,
			Key:         record.Nonce,
			Type:        confirmationType,
			Description: buildDescription(record),
			CapturedAt:  capturedAt,
		})
	}
	return out
}

// buildDescription joins the headline with each summary row's value, one per
// line. Summary rows are single-key objects keyed by "0".
func buildDescription(record models.RawConfirmation) string {
	if len(record.Summary) == 0 {
		return record.Headline
	}

	lines := make([]string, 0, len(record.Summary)+1)
	lines = append(lines, record.Headline)
	for _, row := range record.Summary {
		lines = append(lines, row["0"])
	}
	return strings.Join(lines, "\n")
}
