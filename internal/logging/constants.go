package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldOrgID      = "org_id"
	FieldSeasonID   = "season_id"
	FieldOperation  = "operation"
	FieldStep       = "step"
	FieldRow        = "row"
	FieldRows       = "rows"
	FieldDropped    = "dropped"
	FieldBatch      = "batch"
	FieldBatchSize  = "batch_size"
	FieldSubmitted  = "submitted"
	FieldInserted   = "inserted"
	FieldDuplicates = "duplicates"
	FieldCount      = "count"
	FieldAmount     = "amount_cents"
	FieldHuntType   = "hunt_type"
	FieldLeadDays   = "lead_days"
	FieldDriver     = "driver"
	FieldReason     = "reason"
	FieldComponent  = "component"
)
