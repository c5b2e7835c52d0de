package tui

import (
	"encoding/json"
	"errors"
	"io"
)

// JSONOutput writes one JSON object per line.
type JSONOutput struct {
	encoder *json.Encoder
}

// NewJSONOutput creates a new JSONOutput.
func NewJSONOutput(w io.Writer) *JSONOutput {
	return &JSONOutput{encoder: json.NewEncoder(w)}
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type jsonStatus struct {
	Type    string `json:"type"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type jsonError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Context    string `json:"context,omitempty"`
}

// Print writes {"type":"result","message":line}.
func (o *JSONOutput) Print(line string) {
	o.message("result", line)
}

// Status writes {"type":"status","ok":ok,"message":msg}.
func (o *JSONOutput) Status(ok bool, msg string) {
	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(jsonStatus{Type: "status", OK: ok, Message: msg})
}

// Success writes {"type":"success","message":msg}.
func (o *JSONOutput) Success(msg string) {
	o.message("success", msg)
}

// Error writes {"type":"error",...}, including the suggestion of an ActionableError.
func (o *JSONOutput) Error(err error) {
	jsonErr := jsonError{
		Type:    "error",
		Message: err.Error(),
	}

	var ae *ActionableError
	if errors.As(err, &ae) {
		jsonErr.Suggestion = ae.Suggestion
		jsonErr.Context = ae.Context
	}

	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(jsonErr)
}

// Warning writes {"type":"warning","message":msg}.
func (o *JSONOutput) Warning(msg string) {
	o.message("warning", msg)
}

// Info writes {"type":"info","message":msg}.
func (o *JSONOutput) Info(msg string) {
	o.message("info", msg)
}

// JSON writes v on a single line.
func (o *JSONOutput) JSON(v any) error {
	return o.encoder.Encode(v)
}

func (o *JSONOutput) message(kind, msg string) {
	//nolint:errchkjson // interface method has no error return
	_ = o.encoder.Encode(jsonMessage{Type: kind, Message: msg})
}
