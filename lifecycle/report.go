package lifecycle

import (
	"fmt"
	"strings"
)

// Outcome classifies what happened to one resource during teardown.
type Outcome string

const (
	// OutcomeDeleted means the resource was removed.
	OutcomeDeleted Outcome = "deleted"
	// OutcomeSkipped means no identifier was recorded for the resource.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the delete call failed; the identifier is retained.
	OutcomeFailed Outcome = "failed"
)

// ResourceResult is the teardown outcome for a single resource.
type ResourceResult struct {
	Resource string
	Outcome  Outcome
	Err      error
}

// TeardownReport aggregates per-resource outcomes of one delete invocation.
type TeardownReport struct {
	Results []ResourceResult
}

func (r *TeardownReport) add(resource string, outcome Outcome, err error) {
	r.Results = append(r.Results, ResourceResult{Resource: resource, Outcome: outcome, Err: err})
}

// Clean reports whether no deletion failed.
func (r *TeardownReport) Clean() bool {
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			return false
		}
	}
	return true
}

// String renders one line per resource.
func (r *TeardownReport) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.Err != nil {
			fmt.Fprintf(&b, "%s: %s (%v)\n", res.Resource, res.Outcome, res.Err)
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", res.Resource, res.Outcome)
	}
	return b.String()
}
