// Package export serializes a RecordSet's tabular view: CSV for plain
// interchange and XLSX for the downloadable spreadsheet artifact.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the CSV output delimiter, configurable via the export
// section of the config.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV output and input.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = string(delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteRecordsToCSV writes records to a CSV file in the canonical column
// order (date, time, category, receiver, amount, filename).
func WriteRecordsToCSV(records []models.Record, csvFile string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	log.Info("Writing records to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes user-provided output paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// ReadRecordsFromCSV reads a previously exported records CSV back into
// memory, for the advise and export subcommands.
func ReadRecordsFromCSV(csvFile string) ([]models.Record, error) {
	log.Info("Reading records from CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile})

	file, err := os.Open(csvFile) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var records []models.Record
	if err := gocsv.UnmarshalCSV(reader, &records); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Info("Successfully read records",
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return records, nil
}
