// Package export converts a records CSV into the XLSX spreadsheet artifact.
package export

import (
	"strings"

	"fjacquet/slipscan/cmd/root"
	exp "fjacquet/slipscan/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a records CSV to an XLSX spreadsheet",
	Long: `Export reads a records CSV produced by the scan command and writes the
same table as an XLSX workbook with the fixed sheet name "` + exp.SheetName + `".

Example:
  slipscan export -i out/records.csv -o out/records.xlsx`,
	Run: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatalf("Input CSV must be specified with -i")
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + ".xlsx"
	}

	records, err := exp.ReadRecordsFromCSV(input)
	if err != nil {
		logger.Fatalf("Failed to read records: %v", err)
	}

	if err := exp.WriteRecordsToXLSXFile(records, output); err != nil {
		logger.Fatalf("Failed to write XLSX: %v", err)
	}
}
