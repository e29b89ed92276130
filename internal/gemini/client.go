// Package gemini wraps the Google Gemini API behind the small interfaces
// the extractor and advisor consume. It is the only package that imports
// the genai SDK.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Client talks to the Gemini API with two configured models: a vision model
// for slip extraction and a text model for the commentary pass.
type Client struct {
	client      *genai.Client
	visionModel *genai.GenerativeModel
	textModel   *genai.GenerativeModel
	logger      logging.Logger
}

// NewClient creates a Gemini client. The API key must be non-empty; the
// caller is expected to have checked the credential before starting a batch.
func NewClient(ctx context.Context, apiKey, visionModel, textModel string, logger logging.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key must not be empty")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	vm := client.GenerativeModel(visionModel)
	tm := vm
	if textModel != "" && textModel != visionModel {
		tm = client.GenerativeModel(textModel)
	}

	return &Client{
		client:      client,
		visionModel: vm,
		textModel:   tm,
		logger:      logger,
	}, nil
}

// ExtractSlip sends the instruction prompt together with one slip image and
// returns the raw text reply. No retry is applied; a failed call is the
// caller's per-item failure.
func (c *Client) ExtractSlip(ctx context.Context, prompt string, image models.SlipImage) (string, error) {
	c.logger.Debug("Sending slip to Gemini",
		logging.Field{Key: logging.FieldFile, Value: image.Filename},
		logging.Field{Key: logging.FieldOperation, Value: "extract"})

	resp, err := c.visionModel.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(image.Format, image.Data),
	)
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	return responseText(resp)
}

// Comment sends a text-only prompt and returns the reply verbatim. The
// commentary pass treats the reply as opaque prose.
func (c *Client) Comment(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug("Requesting commentary from Gemini",
		logging.Field{Key: logging.FieldOperation, Value: "comment"})

	resp, err := c.textModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	return responseText(resp)
}

// ListGenerativeModels returns the names of available models that support
// the generateContent method.
func (c *Client) ListGenerativeModels(ctx context.Context) ([]string, error) {
	var names []string

	iter := c.client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				names = append(names, m.Name)
				break
			}
		}
	}

	return names, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("no text parts in Gemini response")
	}

	return b.String(), nil
}
