package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/slipscan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXLSXBufferRoundTrip(t *testing.T) {
	buf, err := WriteRecordsToXLSXBuffer(sampleRecords())
	require.NoError(t, err)

	rows, err := ReadXLSXRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, models.Columns, rows[0])
	assert.Equal(t, []string{"2025-01-15", "12:30", "food", "Migros", "23.45", "slip-001.jpg"}, rows[1])
	assert.Equal(t, "88.00", rows[2][4])
	assert.Equal(t, "slip-002.png", rows[2][5])
}

func TestXLSXEmptyRecordsStillHasHeader(t *testing.T) {
	buf, err := WriteRecordsToXLSXBuffer(nil)
	require.NoError(t, err)

	rows, err := ReadXLSXRows(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, models.Columns, rows[0])
}

func TestWriteRecordsToXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.xlsx")

	require.NoError(t, WriteRecordsToXLSXFile(sampleRecords(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := ReadXLSXRows(f)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestXLSXMIMEType(t *testing.T) {
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		XLSXMIMEType)
}
