// Package workflow loads the status workflow from CUE definitions.
//
// Statuses drive the status:/is: search directives: each entry names a
// status and says whether it counts as closed. A default workflow is
// embedded; a config-named CUE file overrides it.
package workflow

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/dmehra/tracklet/internal/item"
)

//go:embed default_workflow.cue
var defaultWorkflowCUE []byte

// Default returns the embedded workflow. Panics only if the embedded
// file is invalid, which the package tests pin down.
func Default() []item.StatusRef {
	refs, err := parse(defaultWorkflowCUE, "default_workflow.cue")
	if err != nil {
		panic(fmt.Sprintf("embedded workflow invalid: %v", err))
	}
	return refs
}

// Load reads a workflow from a CUE file. An empty path selects the
// embedded default.
func Load(path string) ([]item.StatusRef, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow: %w", err)
	}
	refs, err := parse(src, path)
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// parse compiles CUE source and extracts the status map. Expected shape:
//
//	status: {
//	    "Open":      {closable: false}
//	    "Completed": {closable: true}
//	}
//
// Uses the CUE SDK's Go API directly (not a CLI subprocess). Field
// order in the source is preserved so seeded ids are stable.
func parse(src []byte, filename string) ([]item.StatusRef, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compile workflow: %w", err)
	}

	statusVal := value.LookupPath(cue.ParsePath("status"))
	if !statusVal.Exists() {
		return nil, fmt.Errorf("workflow %s: missing required field \"status\"", filename)
	}

	iter, err := statusVal.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterate statuses: %w", err)
	}

	var refs []item.StatusRef
	for iter.Next() {
		name := iter.Label()
		closableVal := iter.Value().LookupPath(cue.ParsePath("closable"))
		if !closableVal.Exists() {
			return nil, fmt.Errorf("workflow %s: status %q: missing required field \"closable\"", filename, name)
		}
		closable, err := closableVal.Bool()
		if err != nil {
			return nil, fmt.Errorf("workflow %s: status %q: %w", filename, name, err)
		}
		refs = append(refs, item.StatusRef{Name: name, Closable: closable})
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("workflow %s: at least one status is required", filename)
	}
	return refs, nil
}
