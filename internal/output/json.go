// Package output prints CLI results as JSON. Everything the CLI emits goes
// through here so scripts and AI consumers get a stable shape.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var Writer io.Writer = os.Stdout

func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(Writer, string(data))
	return err
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// JSONError prints a structured error instead of failing the command, so
// the exit code stays zero while the payload explains what went wrong.
func JSONError(msg string, details string) {
	_ = JSON(ErrorResponse{Error: msg, Details: details})
}
