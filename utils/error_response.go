package utils

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MissingField identifies one required custom field a completion is missing.
type MissingField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CompletionError reports which preconditions block completing an
// appointment.
type CompletionError struct {
	Message       string         `json:"message"`
	DynMissing    []MissingField `json:"dyn_missing"`
	PhotosMissing bool           `json:"photos_missing"`
}
