// Package srclang detects the source language of an input file using
// go-enry. The formatter uses it to warn when a file handed to it does
// not look like assembly; detection is advisory and never blocks
// formatting.
package srclang

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be determined.
const Unknown = "unknown"

// Detect returns the language enry infers from the filename and
// contents, or Unknown.
func Detect(filename string, content []byte) string {
	if lang := enry.GetLanguage(filename, content); lang != "" {
		return lang
	}
	return Unknown
}

// IsAssembly reports whether a detected language names an assembly
// dialect. enry distinguishes several ("Assembly", "Unix Assembly",
// "Motorola 68K Assembly", ...); any of them counts, and so does an
// undetectable language — the formatter only warns on a confident
// non-assembly verdict.
func IsAssembly(lang string) bool {
	if lang == Unknown {
		return true
	}
	return strings.Contains(lang, "Assembly") || lang == "GAS"
}
