package entities

import "fmt"

// AnalysisErrorKind classifies failures that abort an analysis run.
type AnalysisErrorKind string

const (
	ErrorKindIO            AnalysisErrorKind = "io"
	ErrorKindTraversal     AnalysisErrorKind = "traversal"
	ErrorKindCatalogDecode AnalysisErrorKind = "catalog_decode"
	ErrorKindPattern       AnalysisErrorKind = "pattern"
	ErrorKindValidation    AnalysisErrorKind = "validation"
)

// AnalysisError is the typed error surfaced by every layer of the analysis.
type AnalysisError struct {
	Kind AnalysisErrorKind
	Path string
	Err  error
}

// NewAnalysisError wraps err with a kind and the offending path (may be empty).
func NewAnalysisError(kind AnalysisErrorKind, path string, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Path: path, Err: err}
}

func (e *AnalysisError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error at %s: %v", e.Kind, e.Path, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
