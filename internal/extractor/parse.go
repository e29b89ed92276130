package extractor

import (
	"encoding/json"
	"fmt"

	"fjacquet/slipscan/internal/currencyutils"
	"fjacquet/slipscan/internal/models"
	"fjacquet/slipscan/internal/sliperror"
	"fjacquet/slipscan/internal/textutils"

	"github.com/shopspring/decimal"
)

// slipPayload mirrors the JSON object the prompt requests. Every field is
// optional at decode time; the payload comes from an untrusted schema and
// missing fields default rather than fail.
type slipPayload struct {
	Status   string          `json:"status"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Amount   json.RawMessage `json:"amount"`
	Receiver string          `json:"receiver"`
	Category string          `json:"category"`
}

// parseReply normalizes and parses a raw model reply for one slip. It
// returns (record, false, nil) for a usable record, (_, true, nil) when the
// reply carries the not-a-slip sentinel, and a ReplyParseError otherwise.
// The filename always comes from the upload, never from the model.
func parseReply(raw, filename string) (models.Record, bool, error) {
	clean := textutils.ExtractJSONObject(textutils.StripCodeFence(raw))

	var payload slipPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return models.Record{}, false, &sliperror.ReplyParseError{
			Filename: filename,
			Snippet:  snippet(clean),
			Err:      err,
		}
	}

	if payload.Status != "" {
		// Explicit sentinel: the model decided the image is not a slip.
		return models.Record{}, true, nil
	}

	amount, err := parseAmount(payload.Amount)
	if err != nil {
		return models.Record{}, false, &sliperror.ReplyParseError{
			Filename: filename,
			Snippet:  snippet(clean),
			Err:      err,
		}
	}

	return models.Record{
		Date:     payload.Date,
		Time:     payload.Time,
		Amount:   amount,
		Receiver: payload.Receiver,
		Category: payload.Category,
		Filename: filename,
	}, false, nil
}

// parseAmount accepts the amount as a JSON number or as a string with
// optional currency formatting. A missing amount defaults to zero;
// a negative amount is normalized to its absolute value.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		amount, err := currencyutils.ParseAmount(s)
		if err != nil {
			return decimal.Zero, err
		}
		return amount.Abs(), nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		amount, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount %q: %w", n.String(), err)
		}
		return amount.Abs(), nil
	}

	return decimal.Zero, fmt.Errorf("amount is neither a number nor a string: %s", string(raw))
}

const maxSnippetLen = 120

func snippet(s string) string {
	if len(s) > maxSnippetLen {
		return s[:maxSnippetLen] + "..."
	}
	return s
}
