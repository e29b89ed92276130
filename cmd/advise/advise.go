// Package advise re-runs the commentary pass over a previously exported
// records CSV.
package advise

import (
	"fmt"

	"fjacquet/slipscan/cmd/root"
	"fjacquet/slipscan/internal/aggregator"
	"fjacquet/slipscan/internal/export"
	"fjacquet/slipscan/internal/models"

	"github.com/spf13/cobra"
)

var roastMode bool

// Cmd represents the advise command.
var Cmd = &cobra.Command{
	Use:   "advise",
	Short: "Generate spending advice from an exported records CSV",
	Long: `Advise reads a records CSV produced by the scan command, re-aggregates it,
and asks the model for a warning about disproportionate categories plus
concrete reduction advice.

Example:
  slipscan advise -i out/records.csv`,
	Run: adviseFunc,
}

func init() {
	Cmd.Flags().BoolVar(&roastMode, "roast", false, "Generate a sarcastic roast instead of structured advice")
}

func adviseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	if root.SharedFlags.Input == "" {
		logger.Fatalf("Input CSV must be specified with -i")
	}

	records, err := export.ReadRecordsFromCSV(root.SharedFlags.Input)
	if err != nil {
		logger.Fatalf("Failed to read records: %v", err)
	}
	if len(records) == 0 {
		logger.Fatalf("No records in %s, nothing to advise on", root.SharedFlags.Input)
	}

	rs := models.NewRecordSet()
	for _, r := range records {
		rs.Append(r)
	}
	summary := aggregator.Summarize(rs)

	adv, err := root.GetContainer().GetAdvisor(cmd.Context())
	if err != nil {
		logger.Fatalf("Cannot create advisor: %v", err)
	}

	var commentary string
	if roastMode {
		commentary, err = adv.Roast(cmd.Context(), summary)
	} else {
		commentary, err = adv.Advise(cmd.Context(), summary)
	}
	if err != nil {
		logger.Fatalf("Commentary generation failed: %v", err)
	}

	fmt.Println(commentary)
}
