package logging

// Standard field names for structured log output.
const (
	FieldCardID    = "card_id"
	FieldCategory  = "category"
	FieldMerchant  = "merchant"
	FieldAmount    = "amount"
	FieldModel     = "model"
	FieldOperation = "operation"
	FieldOutcome   = "outcome"
	FieldCount     = "count"
	FieldFile      = "file_path"
	FieldFormat    = "format"
	FieldDuration  = "duration_ms"
)
