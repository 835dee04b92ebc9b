package cli

import (
	"io"
	"path/filepath"

	"github.com/matzehuels/pydepsync/pkg/diag"
	"github.com/matzehuels/pydepsync/pkg/errors"
	"github.com/matzehuels/pydepsync/pkg/pipeline"
)

// renderReport prints a sync report for humans.
func renderReport(w io.Writer, r *pipeline.Report) {
	manifest := filepath.Base(r.Manifest)

	switch {
	case !r.Pending():
		printSuccess(w, "%s is up to date", manifest)
	case r.Written:
		printSuccess(w, "Added %d %s to %s", len(r.Added), plural(len(r.Added), "dependency", "dependencies"), manifest)
	default:
		printInfo(w, "Would add %d %s to %s", len(r.Added), plural(len(r.Added), "dependency", "dependencies"), manifest)
	}
	for _, req := range r.Added {
		printAdded(w, req)
	}

	for _, d := range r.Diagnostics {
		if d.Severity >= diag.Warning {
			printWarning(w, "%s", d)
		}
	}

	printStats(w,
		stat{r.Files, plural(r.Files, "file", "files")},
		stat{len(r.Imports), plural(len(r.Imports), "third-party import", "third-party imports")},
		stat{len(r.Resolved), "resolved"},
		stat{len(r.Unresolved), "unresolved"},
	)

	if r.Pending() && !r.Written {
		printNewline(w)
		printNextStep(w, "Apply with", "pydepsync "+displayPath(r.Root))
	}
}

// renderCachePath prints where the configured cache lives.
func renderCachePath(w io.Writer, backend, location string) {
	printKeyValue(w, "backend", StyleHighlight.Render(backend))
	printKeyValue(w, "location", location)
}

// PrintError prints a fatal error, tagged with its code when it has one.
func PrintError(w io.Writer, err error) {
	if code := errors.GetCode(err); code != "" {
		printError(w, "%s %s", errors.UserMessage(err), StyleDim.Render("["+string(code)+"]"))
		return
	}
	printError(w, "%s", err)
}
