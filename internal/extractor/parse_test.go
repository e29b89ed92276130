package extractor

import (
	"errors"
	"testing"

	"fjacquet/slipscan/internal/sliperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantAmount   string
		wantCategory string
		wantReceiver string
	}{
		{
			name:         "bare json with numeric amount",
			raw:          `{"date": "2025-02-14", "time": "09:15", "amount": 23.45, "receiver": "Migros", "category": "food"}`,
			wantAmount:   "23.45",
			wantCategory: "food",
			wantReceiver: "Migros",
		},
		{
			name:         "fenced json",
			raw:          "```json\n{\"date\": \"2025-02-14\", \"time\": \"\", \"amount\": 7, \"receiver\": \"Kiosk\", \"category\": \"Other\"}\n```",
			wantAmount:   "7.00",
			wantCategory: "Other",
			wantReceiver: "Kiosk",
		},
		{
			name:         "amount as formatted string",
			raw:          `{"date": "2025-02-14", "time": "", "amount": "CHF 1'234.50", "receiver": "Garage", "category": "transport"}`,
			wantAmount:   "1234.50",
			wantCategory: "transport",
			wantReceiver: "Garage",
		},
		{
			name:         "negative amount normalized",
			raw:          `{"date": "2025-02-14", "time": "", "amount": -15.00, "receiver": "Refund", "category": "Other"}`,
			wantAmount:   "15.00",
			wantCategory: "Other",
			wantReceiver: "Refund",
		},
		{
			name:         "missing amount defaults to zero",
			raw:          `{"date": "2025-02-14", "time": "", "receiver": "Unknown", "category": "Other"}`,
			wantAmount:   "0.00",
			wantCategory: "Other",
			wantReceiver: "Unknown",
		},
		{
			name:         "prose around json",
			raw:          `Sure! Here is the result: {"date": "2025-02-14", "time": "", "amount": 2, "receiver": "Bakery", "category": "food"} Let me know if you need anything else.`,
			wantAmount:   "2.00",
			wantCategory: "food",
			wantReceiver: "Bakery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, notASlip, err := parseReply(tt.raw, "slip.jpg")
			require.NoError(t, err)
			assert.False(t, notASlip)
			assert.Equal(t, tt.wantAmount, record.Amount.StringFixed(2))
			assert.Equal(t, tt.wantCategory, record.Category)
			assert.Equal(t, tt.wantReceiver, record.Receiver)
			assert.Equal(t, "slip.jpg", record.Filename)
		})
	}
}

func TestParseReplySentinel(t *testing.T) {
	// Any non-empty status means the model rejected the image.
	for _, raw := range []string{
		`{"status": "error"}`,
		"```json\n{\"status\": \"error\"}\n```",
		`{"status": "not_a_receipt"}`,
	} {
		_, notASlip, err := parseReply(raw, "cat.jpg")
		require.NoError(t, err)
		assert.True(t, notASlip, "reply %q should be treated as the sentinel", raw)
	}
}

func TestParseReplyErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain prose", raw: "I cannot read this image."},
		{name: "empty reply", raw: ""},
		{name: "json array", raw: `[1, 2, 3]`},
		{name: "invalid amount string", raw: `{"amount": "not-a-number"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseReply(tt.raw, "slip.jpg")
			require.Error(t, err)

			var parseErr *sliperror.ReplyParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "slip.jpg", parseErr.Filename)
		})
	}
}

func TestSnippetTruncation(t *testing.T) {
	long := make([]byte, maxSnippetLen*2)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, snippet(string(long)), maxSnippetLen+len("..."))
	assert.Equal(t, "short", snippet("short"))
}

func TestBuildExtractionPrompt(t *testing.T) {
	prompt := BuildExtractionPrompt([]string{"food", "travel"})

	assert.Contains(t, prompt, "food")
	assert.Contains(t, prompt, "travel")
	for _, field := range []string{"date", "time", "amount", "receiver", "category"} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, `"status"`)
}
