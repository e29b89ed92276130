package models

// StatusField is the JSON field the model is instructed to set when an
// image is not a recognizable payment slip. A reply carrying this field
// produces no record.
const StatusField = "status"

// StatusNotASlip is the error sentinel value requested by the prompt.
const StatusNotASlip = "error"

// CategoryNone is the placeholder reported when an aggregate over an empty
// RecordSet has no defined category.
const CategoryNone = "n/a"

// CategoryOther is suggested to the model for slips that fit no other label.
const CategoryOther = "Other"

// DefaultCategories are the labels suggested in the extraction prompt when
// no categories.yaml is present. The set is open: the model may answer with
// a label outside this list and the record is kept as-is.
var DefaultCategories = []string{
	"Food & Drink",
	"Groceries",
	"Shopping",
	"Bills & Utilities",
	"Transport",
	"Travel",
	"Entertainment",
	"Transfer",
	CategoryOther,
}
