package asvs

import "fmt"

// ConfigError indicates an unsupported catalog version selector.
type ConfigError struct {
	Version int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unsupported ASVS version %d (must be 4 or 5)", e.Version)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(version int) *ConfigError {
	return &ConfigError{Version: version}
}

// RetrievalError indicates a failed catalog download.
type RetrievalError struct {
	URL    string
	Status int // HTTP status code, 0 when no response was received
	Err    error
}

func (e *RetrievalError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// NewRetrievalError creates a new RetrievalError.
func NewRetrievalError(url string, status int, err error) *RetrievalError {
	return &RetrievalError{URL: url, Status: status, Err: err}
}

// FormatError indicates catalog CSV content that does not match the
// expected column schema.
type FormatError struct {
	Line int // 1-based record number in the source CSV, 0 when unknown
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog csv line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("catalog csv: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NewFormatError creates a new FormatError.
func NewFormatError(line int, err error) *FormatError {
	return &FormatError{Line: line, Err: err}
}

// WriteError indicates a failure writing the workbook to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}
