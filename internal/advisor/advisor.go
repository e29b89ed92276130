// Package advisor runs the second AI pass: free-text commentary over the
// aggregated batch. The reply is returned verbatim and never parsed.
package advisor

import (
	"context"
	"fmt"
	"time"

	"fjacquet/slipscan/internal/aggregator"
	"fjacquet/slipscan/internal/logging"
)

// Commentator is the AI service boundary for the commentary pass.
type Commentator interface {
	Comment(ctx context.Context, prompt string) (string, error)
}

// Advisor builds commentary prompts from a batch summary.
type Advisor struct {
	client  Commentator
	timeout time.Duration
	logger  logging.Logger
}

// New creates an Advisor. timeout bounds the single AI call (zero means no
// deadline beyond the transport's own).
func New(client Commentator, timeout time.Duration, logger logging.Logger) *Advisor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Advisor{
		client:  client,
		timeout: timeout,
		logger:  logger.WithField("component", "Advisor"),
	}
}

// Roast asks for a short sarcastic commentary on the spending habits,
// pointed at the highest-spending category.
func (a *Advisor) Roast(ctx context.Context, summary aggregator.Summary) (string, error) {
	prompt := fmt.Sprintf(`Here is a summary of someone's spending, extracted from their bank payment slips:

%s
Write a short, sarcastic roast of these spending habits (3-4 sentences).
Call out the "%s" category, which ate the biggest share of the money.
Reply with the roast text only.`, summary.Digest(), summary.TopCategory)

	return a.comment(ctx, prompt)
}

// Advise asks for a two-part structured reply: a warning about
// disproportionate categories, then concrete reduction advice. The
// structure is requested by prompt wording only; the reply stays opaque.
func (a *Advisor) Advise(ctx context.Context, summary aggregator.Summary) (string, error) {
	prompt := fmt.Sprintf(`Here is a summary of someone's spending, extracted from their bank payment slips:

%s
Respond in two parts:
1. Warning: point out any category that takes a disproportionate share of the total, starting with "%s".
2. Advice: give concrete, practical suggestions to reduce spending in those categories.
Keep the whole reply under 10 sentences.`, summary.Digest(), summary.TopCategory)

	return a.comment(ctx, prompt)
}

func (a *Advisor) comment(ctx context.Context, prompt string) (string, error) {
	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reply, err := a.client.Comment(callCtx, prompt)
	if err != nil {
		a.logger.WithError(err).Error("Commentary call failed")
		return "", fmt.Errorf("commentary generation failed: %w", err)
	}

	return reply, nil
}
