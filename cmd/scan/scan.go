// Package scan implements the main pipeline command: images in, records,
// summary, exports and commentary out.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"fjacquet/slipscan/cmd/root"
	"fjacquet/slipscan/internal/aggregator"
	"fjacquet/slipscan/internal/export"
	"fjacquet/slipscan/internal/fileutils"
	"fjacquet/slipscan/internal/logging"

	"github.com/spf13/cobra"
)

var (
	adviceMode bool
	noComment  bool
	writeXLSX  bool
)

// Cmd represents the scan command.
var Cmd = &cobra.Command{
	Use:   "scan [images...]",
	Short: "Extract records from slip images and summarize spending",
	Long: `Scan processes a batch of slip images in order: each image is sent to the
Gemini vision model, the JSON reply is parsed into a record, and the batch
is aggregated into spending statistics with an AI-generated commentary.

Images that fail extraction are skipped; the batch never aborts because of
one bad image.

Example:
  slipscan scan -i slips/ -o out/ --xlsx`,
	Run: scanFunc,
}

func init() {
	Cmd.Flags().BoolVar(&adviceMode, "advice", false, "Generate structured warning+advice instead of a roast")
	Cmd.Flags().BoolVar(&noComment, "no-comment", false, "Skip the AI commentary pass")
	Cmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write an XLSX spreadsheet next to the CSV")
}

func scanFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	paths, err := collectImagePaths(root.SharedFlags.Input, args)
	if err != nil {
		logger.Fatalf("Failed to collect input images: %v", err)
	}
	if len(paths) == 0 {
		logger.Fatalf("No PNG/JPEG images found; pass a directory with -i or image files as arguments")
	}

	images := fileutils.LoadImages(paths)
	if len(images) == 0 {
		logger.Fatalf("None of the %d input images could be read", len(paths))
	}

	appContainer := root.GetContainer()
	ext, err := appContainer.GetExtractor(cmd.Context())
	if err != nil {
		logger.Fatalf("Cannot start extraction: %v", err)
	}

	progress := func(processed, total int, filename string) {
		logger.Info("Processed slip",
			logging.Field{Key: logging.FieldProgress, Value: fmt.Sprintf("%d/%d", processed, total)},
			logging.Field{Key: logging.FieldFile, Value: filename})
	}

	result := ext.ExtractBatch(cmd.Context(), images, progress)

	summary := aggregator.Summarize(result.Records)
	printSummary(summary, result.Failed, result.Skipped)

	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = "."
	}
	writeExports(summary, outDir, logger)

	if noComment || result.Records.IsEmpty() {
		if result.Records.IsEmpty() {
			logger.Warn("No records extracted, skipping commentary")
		}
		return
	}

	adv, err := appContainer.GetAdvisor(cmd.Context())
	if err != nil {
		logger.Fatalf("Cannot create advisor: %v", err)
	}

	var commentary string
	if adviceMode {
		commentary, err = adv.Advise(cmd.Context(), summary)
	} else {
		commentary, err = adv.Roast(cmd.Context(), summary)
	}
	if err != nil {
		logger.WithError(err).Error("Commentary generation failed")
		return
	}

	fmt.Println()
	fmt.Println(commentary)
}

// collectImagePaths merges the -i flag (file or directory) with positional
// image arguments, preserving order.
func collectImagePaths(input string, args []string) ([]string, error) {
	var paths []string

	if input != "" {
		if fileutils.DirectoryExists(input) {
			dirPaths, err := fileutils.ListImagePaths(input)
			if err != nil {
				return nil, err
			}
			paths = append(paths, dirPaths...)
		} else {
			paths = append(paths, input)
		}
	}

	paths = append(paths, args...)
	return paths, nil
}

func printSummary(summary aggregator.Summary, failed, skipped int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	for _, row := range summary.Table() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()

	fmt.Println()
	fmt.Printf("Total spent:   %s\n", summary.TotalAmount.StringFixed(2))
	fmt.Printf("Top category:  %s (%s)\n", summary.TopCategory, summary.TopCategoryTotal.StringFixed(2))
	fmt.Printf("Most frequent: %s (%d records)\n", summary.ModeCategory, summary.ModeCategoryCount)
	if failed > 0 || skipped > 0 {
		fmt.Printf("Not extracted: %d failed, %d not recognized as slips\n", failed, skipped)
	}
}

func writeExports(summary aggregator.Summary, outDir string, logger logging.Logger) {
	if len(summary.Records) == 0 {
		return
	}

	csvPath := filepath.Join(outDir, "records.csv")
	if err := export.WriteRecordsToCSV(summary.Records, csvPath); err != nil {
		logger.WithError(err).Error("CSV export failed")
	}

	if writeXLSX {
		xlsxPath := filepath.Join(outDir, "records.xlsx")
		if err := export.WriteRecordsToXLSXFile(summary.Records, xlsxPath); err != nil {
			logger.WithError(err).Error("XLSX export failed")
		}
	}
}
