// Package export derives downloadable artifacts from highlighted resume documents.
package export

import (
	"context"

	"github.com/matchpoint/matchpoint/internal/matchsvc"
)

// Status is the observable state of one export action.
type Status int

// Export action states. Every export starts and ends at StatusIdle; failures
// pass through StatusFailed before returning to idle, without retry.
const (
	StatusIdle Status = iota
	StatusFetching
	StatusAssembling
	StatusExporting
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusAssembling:
		return "assembling"
	case StatusExporting:
		return "exporting"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ResumeFetcher retrieves raw resume content for a candidate. The matchsvc
// client satisfies this.
type ResumeFetcher interface {
	FetchResume(ctx context.Context, name string) (*matchsvc.Resume, error)
}

// Exporter runs the export action for one candidate at a time: fetch the
// resume, build the highlighted document, hand it to the saver. Concurrent
// Export calls are not guarded against; each call runs its own independent
// pipeline over its own values.
type Exporter struct {
	Fetcher ResumeFetcher
	Saver   Saver

	// OnTransition, when set, observes every state change of an export
	// action. Called synchronously from Export.
	OnTransition func(Status)
}

func (e *Exporter) transition(s Status) {
	if e.OnTransition != nil {
		e.OnTransition(s)
	}
}

// Export fetches the candidate's resume, assembles the highlighted document
// and saves the resulting artifact. The returned artifact is also handed to
// the saver. Any error surfaces once and leaves the exporter idle.
func (e *Exporter) Export(ctx context.Context, candidate matchsvc.Candidate) (Artifact, error) {
	e.transition(StatusFetching)
	resume, err := e.Fetcher.FetchResume(ctx, candidate.Name)
	if err != nil {
		return e.fail(err)
	}

	e.transition(StatusAssembling)
	artifact := Build(candidate.Name, candidate.Role, resume.Content, candidate.Evidence)

	e.transition(StatusExporting)
	if err := e.Saver.Save(ctx, artifact); err != nil {
		return e.fail(err)
	}

	e.transition(StatusIdle)
	return artifact, nil
}

func (e *Exporter) fail(err error) (Artifact, error) {
	e.transition(StatusFailed)
	e.transition(StatusIdle)
	return Artifact{}, err
}
