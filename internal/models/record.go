// Package models provides the data structures shared across the slipscan
// pipeline.
package models

import (
	"github.com/shopspring/decimal"
)

// Record is one structured financial entry extracted from a single slip
// image. Records are immutable once created; the extractor is the only
// producer.
//
// Date and Time are kept as free-form strings exactly as printed on the
// slip. Receipts mix locales and formats, so strict parsing would discard
// otherwise good records.
type Record struct {
	Date     string          `json:"date" csv:"date"`
	Time     string          `json:"time" csv:"time"`
	Category string          `json:"category" csv:"category"`
	Receiver string          `json:"receiver" csv:"receiver"`
	Amount   decimal.Decimal `json:"amount" csv:"amount"`
	Filename string          `json:"filename" csv:"filename"`
}

// RecordSet holds the ordered records of one batch run. It lives for a
// single run only; nothing persists across runs.
type RecordSet struct {
	Records []Record
}

// NewRecordSet creates an empty RecordSet.
func NewRecordSet() *RecordSet {
	return &RecordSet{}
}

// Append adds a record, preserving batch order.
func (rs *RecordSet) Append(r Record) {
	rs.Records = append(rs.Records, r)
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// IsEmpty reports whether the set holds no records.
func (rs *RecordSet) IsEmpty() bool {
	return len(rs.Records) == 0
}

// Columns is the canonical column order for every tabular rendering of a
// RecordSet: on-screen table, CSV export, and XLSX export all use it.
var Columns = []string{"date", "time", "category", "receiver", "amount", "filename"}

// Row renders a record in canonical column order. Missing fields come out
// as empty strings rather than failing.
func (r Record) Row() []string {
	return []string{
		r.Date,
		r.Time,
		r.Category,
		r.Receiver,
		r.Amount.StringFixed(2),
		r.Filename,
	}
}
