package vectors

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Status describes where a suite is in its run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusRunning
	StatusDone
	StatusError
)

// Event reports suite progress to an optional observer.
type Event struct {
	Suite  string
	Status Status
	Passed int
	Failed int
}

// Sink receives progress events. Emit must be safe for concurrent use.
type Sink interface {
	Emit(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Emit(ev Event) {
	if s.Ch != nil {
		s.Ch <- ev
	}
}

// Failure is one case whose executed outcome differed from the expectation.
type Failure struct {
	Case Case
	Got  Outcome
}

func (f Failure) String() string {
	name := f.Case.Name
	if name == "" {
		name = fmt.Sprintf("%s %s %s %s", f.Case.Op, f.Case.Result, f.Case.T, f.Case.U)
	}
	want := f.Case.Want
	if want == "ok" {
		want = "ok(" + f.Case.Value + ")"
	}
	return fmt.Sprintf("%s: got %s, want %s", name, f.Got, want)
}

// SuiteResult is the outcome of one full suite.
type SuiteResult struct {
	Suite    string
	Total    int
	Passed   int
	Failures []Failure
}

// RunSuite executes every case of a suite in order.
func RunSuite(s *Suite) (SuiteResult, error) {
	res := SuiteResult{Suite: s.Name, Total: len(s.Cases)}
	for _, c := range s.Cases {
		got, err := Exec(c.Op, c.Result, c.T, c.U)
		if err != nil {
			return res, fmt.Errorf("suite %q, case %q: %w", s.Name, c.Name, err)
		}
		if matches(c, got) {
			res.Passed++
			continue
		}
		res.Failures = append(res.Failures, Failure{Case: c, Got: got})
	}
	return res, nil
}

func matches(c Case, got Outcome) bool {
	if c.Want == "ok" {
		return got.OK && got.Value == c.Value
	}
	return !got.OK && got.Kind == c.Want
}

// RunSuites executes suites concurrently, bounded by workers, reporting
// progress into sink when it is non-nil. Results keep the input order.
func RunSuites(ctx context.Context, suites []*Suite, workers int, sink Sink) ([]SuiteResult, error) {
	if workers < 1 {
		workers = 1
	}
	emit := func(ev Event) {
		if sink != nil {
			sink.Emit(ev)
		}
	}
	for _, s := range suites {
		emit(Event{Suite: s.Name, Status: StatusQueued})
	}

	results := make([]SuiteResult, len(suites))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range suites {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(Event{Suite: s.Name, Status: StatusRunning})
			res, err := RunSuite(s)
			if err != nil {
				emit(Event{Suite: s.Name, Status: StatusError})
				return err
			}
			results[i] = res
			emit(Event{
				Suite:  s.Name,
				Status: StatusDone,
				Passed: res.Passed,
				Failed: len(res.Failures),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
