// Package extractor turns a batch of slip images into a RecordSet by
// sending each image to the vision model and parsing the JSON reply. Images
// are processed strictly in upload order, one at a time; a failed item is
// skipped and never aborts the batch.
package extractor

import (
	"context"
	"time"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"
	"fjacquet/slipscan/internal/sliperror"
)

// SlipReader is the AI service boundary for slip extraction. The production
// implementation is gemini.Client; tests substitute a stub.
type SlipReader interface {
	ExtractSlip(ctx context.Context, prompt string, image models.SlipImage) (string, error)
}

// ProgressFunc is called after each image, success or failure, with the
// number of images handled so far, the batch total, and the file just
// processed.
type ProgressFunc func(processed, total int, filename string)

// Result is the outcome of one batch run.
type Result struct {
	Records *models.RecordSet
	Failed  int // AI-call or parse failures
	Skipped int // explicit not-a-slip sentinel replies
}

// Extractor runs the per-image extraction pipeline.
type Extractor struct {
	client  SlipReader
	prompt  string
	timeout time.Duration
	logger  logging.Logger
}

// New creates an Extractor. The prompt is built once per Extractor from the
// category suggestions; timeout bounds each individual AI call (zero means
// no deadline beyond the transport's own).
func New(client SlipReader, categories []string, timeout time.Duration, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		client:  client,
		prompt:  BuildExtractionPrompt(categories),
		timeout: timeout,
		logger:  logger.WithField("component", "Extractor"),
	}
}

// ExtractBatch processes the images sequentially in the given order. Every
// per-item failure is contained: the item is counted and the batch moves on.
// No AI call is retried.
func (e *Extractor) ExtractBatch(ctx context.Context, images []models.SlipImage, progress ProgressFunc) Result {
	result := Result{Records: models.NewRecordSet()}
	total := len(images)

	for i, image := range images {
		e.processOne(ctx, image, &result)

		if progress != nil {
			progress(i+1, total, image.Filename)
		}
	}

	e.logger.Info("Batch extraction finished",
		logging.Field{Key: logging.FieldCount, Value: result.Records.Len()},
		logging.Field{Key: logging.FieldFailed, Value: result.Failed},
		logging.Field{Key: logging.FieldSkipped, Value: result.Skipped})

	return result
}

func (e *Extractor) processOne(ctx context.Context, image models.SlipImage, result *Result) {
	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	raw, err := e.client.ExtractSlip(callCtx, e.prompt, image)
	if err != nil {
		extractErr := &sliperror.ExtractionError{Filename: image.Filename, Err: err}
		e.logger.WithError(extractErr).Warn("AI call failed, skipping image",
			logging.Field{Key: logging.FieldFile, Value: image.Filename})
		result.Failed++
		return
	}

	record, notASlip, err := parseReply(raw, image.Filename)
	if err != nil {
		e.logger.WithError(err).Warn("Unusable model reply, skipping image",
			logging.Field{Key: logging.FieldFile, Value: image.Filename})
		result.Failed++
		return
	}

	if notASlip {
		e.logger.Debug("Model reported image is not a slip",
			logging.Field{Key: logging.FieldFile, Value: image.Filename})
		result.Skipped++
		return
	}

	result.Records.Append(record)
	e.logger.Debug("Extracted record",
		logging.Field{Key: logging.FieldFile, Value: image.Filename},
		logging.Field{Key: logging.FieldCategory, Value: record.Category},
		logging.Field{Key: logging.FieldAmount, Value: record.Amount.StringFixed(2)})
}
