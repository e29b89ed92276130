// Package listmodels implements a small credential and connectivity check:
// it lists the Gemini models that support content generation.
package listmodels

import (
	"fmt"

	"fjacquet/slipscan/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the list-models command.
var Cmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available Gemini models that support content generation",
	Long: `List-models verifies the configured API credential and prints the names of
all Gemini models supporting the generateContent method. Useful to pick a
value for ai.model before scanning.`,
	Run: listModelsFunc,
}

func listModelsFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	client, err := root.GetContainer().GetGeminiClient(cmd.Context())
	if err != nil {
		logger.Fatalf("%v", err)
	}

	names, err := client.ListGenerativeModels(cmd.Context())
	if err != nil {
		logger.Fatalf("Error listing models: %v", err)
	}

	if len(names) == 0 {
		logger.Fatalf("No models supporting generateContent found")
	}

	fmt.Println("Available models:")
	for _, name := range names {
		fmt.Println("  " + name)
	}
}
