package logging

// Standardized field names for structured logging. Keeping these in one
// place makes log output consistent and filterable.
const (
	FieldFile      = "file"
	FieldCount     = "count"
	FieldFailed    = "failed"
	FieldSkipped   = "skipped"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldModel     = "model"
	FieldOperation = "operation"
	FieldProgress  = "progress"
	FieldOutput    = "output_file"
	FieldSheet     = "sheet"
)
