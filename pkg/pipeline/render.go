package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/matzehuels/pydepsync/pkg/errors"
)

// Format constants for report output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats is the set of supported report formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: text, json, yaml)", format)
	}
	return nil
}

// Marshal encodes a report as JSON or YAML. Text output is terminal-specific
// and rendered by the CLI.
func Marshal(r *Report, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("render yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
