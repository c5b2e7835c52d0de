// Package logging keeps key material out of sigil's log output.
// It provides a zerolog hook that flags suspicious messages and a writer
// that redacts secrets before they reach the log file.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match key material in the forms sigil reads and writes.
var sensitivePatterns = []*regexp.Regexp{ //nolint:gochecknoglobals // compiled once
	// PEM private keys
	regexp.MustCompile(`(?i)-----BEGIN[A-Z ]*PRIVATE KEY-----`),

	// Labelled hex keys and seeds (32 bytes = 64 hex chars)
	regexp.MustCompile(`(?i)(key|seed|secret)["']?\s*[:=]\s*["']?[0-9a-f]{64}["']?`),

	// Labelled base64 keys and seeds (32 bytes = 43 or 44 chars)
	regexp.MustCompile(`(?i)(key|seed|secret)["']?\s*[:=]\s*["']?[A-Za-z0-9+/_-]{43}=?["']?`),

	// Generic secret assignments
	regexp.MustCompile(`(?i)(password|passwd|credential|private_key|signing_key)["']?\s*[:=]\s*["']?[^\s"',}]{8,}["']?`),
}

// sensitiveFieldNames are log field names whose values are always redacted.
var sensitiveFieldNames = []string{ //nolint:gochecknoglobals // compiled once
	"seed",
	"secret",
	"password",
	"passwd",
	"credential",
	"private_key",
	"privatekey",
	"signing_key",
	"signingkey",
	"key_bytes",
	"keybytes",
}

// SensitiveDataHook is a zerolog hook that flags log events whose message
// looks like it carries key material.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a new SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook. zerolog does not allow rewriting the message
// from a hook, so a match only adds contains_filtered_data=true; the
// FilteringWriter does the actual redaction on disk.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a log field name denotes secret data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// SafeValue returns value filtered for logging under fieldName.
//
//	log.Debug().Str("key_file", logging.SafeValue("key_file", path)).Msg("loading key")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and redacts sensitive data on the way through.
// It sits between zerolog and the rotating log file.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a new FilteringWriter around w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports len(p) on success so callers do not
// see a short write when redaction changes the length.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
