package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/pydepsync/pkg/errors"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    []string
		notWant []string
	}{
		{
			name:    "coded",
			err:     errors.New(errors.ErrCodeChangesFound, "pyproject.toml is missing 2 dependencies"),
			want:    []string{"pyproject.toml is missing 2 dependencies", "[CHANGES_PENDING]"},
			notWant: []string{"CHANGES_PENDING:"},
		},
		{
			name: "wrapped cause",
			err:  errors.Wrap(errors.ErrCodeInvalidManifest, fmt.Errorf("line 3: expected '='"), "parse pyproject.toml"),
			want: []string{"parse pyproject.toml: line 3", "[INVALID_MANIFEST]"},
		},
		{
			name:    "plain",
			err:     fmt.Errorf("boom"),
			want:    []string{"boom"},
			notWant: []string{"["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output %q should not contain %q", out, w)
				}
			}
		})
	}
}
