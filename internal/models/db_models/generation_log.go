package db_models

import "github.com/lib/pq"

const (
	OutcomeSuccess         = "success"
	OutcomeGenerationError = "generation_error"
	OutcomeFormatError     = "format_error"
	OutcomeSchemaError     = "schema_error"
)

// GenerationLog is one itinerary generation attempt, kept for server-side
// diagnostics. RawResponse is the only place a bad completion is stored.
type GenerationLog struct {
	BaseModel
	TraceID     string `gorm:"index"`
	UserID      string `gorm:"index"`
	Provider    string
	Model       string
	Destination string
	TripDays    int
	Currency    string
	Interests   pq.StringArray `gorm:"type:text[]"`
	Prompt      string         `gorm:"type:text"`
	RawResponse string         `gorm:"type:text"`
	Outcome     string         `gorm:"index"`
	ErrorDetail string         `gorm:"type:text"`
	LatencyMs   int64
}
