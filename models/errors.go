package models

import "fmt"

// Error codes used across fetch engines and the run orchestrator.
const (
	ErrCodeNetwork       = "NETWORK_ERROR"
	ErrCodeHTTPStatus    = "HTTP_STATUS"
	ErrCodeTimeout       = "TIMEOUT"
	ErrCodeBrowserLaunch = "BROWSER_LAUNCH"
	ErrCodeNavigation    = "NAVIGATION_FAILED"
	ErrCodeFilesystem    = "FILESYSTEM_ERROR"
)

// FetchError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type FetchError struct {
	Code    string
	Source  string // source label, set by the runner
	Message string
	Err     error // wrapped original error
}

func (e *FetchError) Error() string {
	prefix := e.Code
	if e.Source != "" {
		prefix = e.Source + ": " + e.Code
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(code, message string, err error) *FetchError {
	return &FetchError{Code: code, Message: message, Err: err}
}
