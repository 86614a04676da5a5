// Package export writes a snapshot of the task list in a portable format.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todos/internal/model"
)

// Formats lists the supported format names. "yml" is accepted as an alias.
var Formats = []string{"json", "yaml"}

// Supported reports whether Write understands format.
func Supported(format string) bool {
	switch format {
	case "json", "yaml", "yml":
		return true
	}
	return false
}

// Write encodes tasks to w in the named format.
func Write(w io.Writer, tasks []model.Task, format string) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	switch format {
	case "json":
		b, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
