package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// writeOutput encodes v as JSON or YAML, or calls text for the human format.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case outputText, "":
		return text(w)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
