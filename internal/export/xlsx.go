package export

import (
	"bytes"
	"fmt"
	"io"

	"fjacquet/slipscan/internal/logging"
	"fjacquet/slipscan/internal/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the fixed sheet name of the exported spreadsheet.
const SheetName = "Slips"

// XLSXMIMEType is the MIME type served with the downloadable spreadsheet.
const XLSXMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildWorkbook renders the records into an XLSX workbook with a header row
// followed by one row per record, both in the canonical column order. The
// caller owns the returned file and must close it.
func buildWorkbook(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		closeWorkbook(f)
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	if err := writeRow(f, 1, models.Columns); err != nil {
		closeWorkbook(f)
		return nil, err
	}
	for i, r := range records {
		if err := writeRow(f, i+2, r.Row()); err != nil {
			closeWorkbook(f)
			return nil, err
		}
	}

	return f, nil
}

// WriteRecordsToXLSXBuffer renders the records into an in-memory workbook,
// for serving the spreadsheet as a download.
func WriteRecordsToXLSXBuffer(records []models.Record) (*bytes.Buffer, error) {
	f, err := buildWorkbook(records)
	if err != nil {
		return nil, err
	}
	defer closeWorkbook(f)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook to buffer: %w", err)
	}

	log.Debug("Rendered XLSX workbook",
		logging.Field{Key: logging.FieldSheet, Value: SheetName},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return buf, nil
}

// WriteRecordsToXLSXFile writes the workbook to disk.
func WriteRecordsToXLSXFile(records []models.Record, path string) error {
	f, err := buildWorkbook(records)
	if err != nil {
		return err
	}
	defer closeWorkbook(f)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}

	log.Info("Wrote XLSX file",
		logging.Field{Key: logging.FieldOutput, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})

	return nil
}

// ReadXLSXRows reads all rows of the fixed sheet back from a workbook, for
// round-trip verification and the export subcommand.
func ReadXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer closeWorkbook(f)

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", SheetName, err)
	}

	return rows, nil
}

func closeWorkbook(f *excelize.File) {
	if cerr := f.Close(); cerr != nil {
		log.WithError(cerr).Warn("Failed to close workbook")
	}
}

func writeRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error computing cell name: %w", err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}

	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("error writing row %d: %w", row, err)
	}

	return nil
}
