// Package logging provides a structured logging wrapper around
// charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldOutput   = "output"
	FieldLanguage = "language"

	// Result fields.
	FieldChanged    = "changed"
	FieldInsertions = "insertions"
	FieldDeletions  = "deletions"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
