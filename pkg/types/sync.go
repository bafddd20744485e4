package types

import "fmt"

// Mode selects how a sync pair is reconciled.
type Mode int

const (
	// ModeLink makes the local path a symlink to the cloud path.
	ModeLink Mode = iota
	// ModeCopy copies whichever side was modified most recently.
	ModeCopy
)

func (m Mode) String() string {
	switch m {
	case ModeLink:
		return "link"
	case ModeCopy:
		return "copy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SyncPair is a fully resolved cloud/local pair ready for reconciliation.
type SyncPair struct {
	Cloud string
	Local string
	Mode  Mode
}

// Outcome describes what the reconciler did with a pair.
type Outcome string

const (
	OutcomeLinked        Outcome = "linked"
	OutcomeAlreadyLinked Outcome = "already_linked"
	OutcomeCopied        Outcome = "copied"
	OutcomeUpdatedCloud  Outcome = "updated_cloud"
	OutcomeInSync        Outcome = "in_sync"
)

// Result is the report for one reconciled pair.
type Result struct {
	Pair    SyncPair
	Outcome Outcome
	// Bytes is the number of bytes copied, zero for links and no-ops.
	Bytes int64
	// DryRun is set when the outcome was planned but not applied.
	DryRun bool
	// Previous is the target of a symlink that Link replaced.
	Previous string
}

// Changed reports whether the result represents a filesystem mutation.
func (r Result) Changed() bool {
	switch r.Outcome {
	case OutcomeLinked, OutcomeCopied, OutcomeUpdatedCloud:
		return true
	}
	return false
}
