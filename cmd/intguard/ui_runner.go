package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"intguard/internal/ui"
	"intguard/internal/vectors"
)

type runOutcome struct {
	results []vectors.SuiteResult
	err     error
}

func runVectorsWithUI(ctx context.Context, title string, suites []*vectors.Suite, jobs int) ([]vectors.SuiteResult, error) {
	events := make(chan vectors.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		results, err := vectors.RunSuites(ctx, suites, jobs, vectors.ChannelSink{Ch: events})
		outcomeCh <- runOutcome{results: results, err: err}
		close(events)
	}()

	names := make([]string, 0, len(suites))
	for _, s := range suites {
		names = append(names, s.Name)
	}
	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
