package runner

import (
	"github.com/arthur-debert/potbin/pkg/pdec"
	"github.com/arthur-debert/potbin/pkg/types"
)

// Reporter receives progress events from a run.
type Reporter interface {
	FileStarted(path string)
	Declared(name, value string)
	Marked(dir string, dryRun bool)
	Synced(result types.Result)
	Skipped(line pdec.Line, err error)
	FileFailed(path string, err error)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) FileStarted(string)       {}
func (NopReporter) Declared(string, string)  {}
func (NopReporter) Marked(string, bool)      {}
func (NopReporter) Synced(types.Result)      {}
func (NopReporter) Skipped(pdec.Line, error) {}
func (NopReporter) FileFailed(string, error) {}

// Summary counts what a run did.
type Summary struct {
	Files         int
	Declarations  int
	Marked        int
	Linked        int
	AlreadyLinked int
	Copied        int
	UpdatedCloud  int
	InSync        int
	Skipped       int
	FailedFiles   int
}

// Add counts one reconciled pair.
func (s *Summary) Add(result types.Result) {
	switch result.Outcome {
	case types.OutcomeLinked:
		s.Linked++
	case types.OutcomeAlreadyLinked:
		s.AlreadyLinked++
	case types.OutcomeCopied:
		s.Copied++
	case types.OutcomeUpdatedCloud:
		s.UpdatedCloud++
	case types.OutcomeInSync:
		s.InSync++
	}
}

// Changed returns the number of pairs that mutated the filesystem.
func (s Summary) Changed() int {
	return s.Linked + s.Copied + s.UpdatedCloud
}
