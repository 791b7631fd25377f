package models

// Status of a single certificate check, ordered by severity:
// OK < WARNING < ERROR/EXPIRED.
type Status string

const (
	StatusOK      Status = "OK"
	StatusWarning Status = "WARNING"
	StatusError   Status = "ERROR"
	StatusExpired Status = "EXPIRED"
)

// NeedsAlert reports whether a status should trigger a webhook notification.
func (s Status) NeedsAlert() bool {
	return s == StatusWarning || s == StatusError || s == StatusExpired
}

// DaysUnknown marks a result whose certificate could not be retrieved at all.
// It sits far outside any real days-until-expiry value, so consumers can tell
// "retrieval failed" apart from "expired long ago".
const DaysUnknown = -9999

type Endpoint struct {
	Host  string `json:"host" example:"example.com"`
	Port  int    `json:"port" example:"443"`
	Label string `json:"label" example:"example.com"`
}

type Thresholds struct {
	WarningDays int `json:"warning_days" example:"30"`
	ErrorDays   int `json:"error_days" example:"7"`
}

type CheckResult struct {
	Label         string `json:"label" example:"example.com"`
	Host          string `json:"host" example:"example.com"`
	Port          int    `json:"port" example:"443"`
	Status        Status `json:"status" example:"OK"`
	DaysRemaining int    `json:"days_remaining" example:"120"`
	ExpiresAt     string `json:"expires_at,omitempty" example:"2024-06-01T12:00:00Z"`
	ErrorMessage  string `json:"error_message,omitempty" example:""`
}

type RunReport struct {
	RunID     string        `json:"run_id" example:"7f9c2ba4-e88f-4a1c-9018-4d6ee1a9f6a5"`
	CheckedAt string        `json:"checked_at" example:"2024-01-01T12:00:00Z"`
	ExitCode  int           `json:"exit_code" example:"0"`
	Results   []CheckResult `json:"results"`
}
