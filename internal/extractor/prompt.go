package extractor

import (
	"strings"

	"fjacquet/slipscan/internal/models"
)

// BuildExtractionPrompt returns the fixed instruction prompt sent with every
// slip image. The categories are suggestions only; the model may answer with
// a label outside the list.
func BuildExtractionPrompt(categories []string) string {
	if len(categories) == 0 {
		categories = models.DefaultCategories
	}

	var b strings.Builder
	b.WriteString("You are a bank payment slip reader.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Read the attached image of a bank payment slip or transfer receipt.\n")
	b.WriteString("- Output STRICT JSON only: a single JSON object, no comments, no extra text.\n")
	b.WriteString("- Do NOT wrap the response in code fences. Do NOT use ```json or any Markdown.\n\n")
	b.WriteString("The object must have exactly these fields:\n")
	b.WriteString("- \"date\": string, the transaction date as printed on the slip\n")
	b.WriteString("- \"time\": string, the transaction time as printed on the slip\n")
	b.WriteString("- \"amount\": number, the transferred amount (digits only, no currency symbol)\n")
	b.WriteString("- \"receiver\": string, the receiving party's name\n")
	b.WriteString("- \"category\": string, your best classification of the spending\n\n")
	b.WriteString("Suggested categories (pick the closest, or invent a better one):\n")
	for _, c := range categories {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\nIf the image is NOT a recognizable payment slip, reply with exactly:\n")
	b.WriteString(`{"` + models.StatusField + `": "` + models.StatusNotASlip + `"}` + "\n")

	return b.String()
}
