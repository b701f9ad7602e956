package util

import (
	"encoding/json"
	"fmt"
	"io"
)

// Fprint writes i as indented json followed by a newline.
func Fprint(w io.Writer, i interface{}) error {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(bytes))
	return err
}
