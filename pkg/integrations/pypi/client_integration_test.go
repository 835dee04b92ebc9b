//go:build integration

package pypi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/pydepsync/pkg/integrations"
)

func TestFetchProject_Integration(t *testing.T) {
	client := NewClient(DefaultIndexURL, nil, nil, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tests := []struct {
		name    string
		pkg     string
		missing bool
	}{
		{"requests", "requests", false},
		{"django mixed case", "Django", false},
		{"nonexistent", "this-package-should-not-exist-12345", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := client.FetchProject(ctx, tt.pkg, true)
			if tt.missing {
				if !errors.Is(err, integrations.ErrNotFound) {
					t.Errorf("FetchProject(%q) error = %v, want ErrNotFound", tt.pkg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchProject(%q) error = %v", tt.pkg, err)
			}
			if len(info.Versions) == 0 {
				t.Error("expected at least one version")
			}
		})
	}
}
