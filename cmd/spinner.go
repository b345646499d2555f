package cmd

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	receiptadapter "github.com/bnema/bibbox-fbs/internal/adapters/render/receipt"
	"github.com/bnema/bibbox-fbs/internal/domain"
)

// fbsProgress reports the items of a running FBS call.
type fbsProgress interface {
	Started(itemIdentifier string)
	Finished(result domain.CirculationResult)
}

type nopProgress struct{}

func (nopProgress) Started(string)                    {}
func (nopProgress) Finished(domain.CirculationResult) {}

type programProgress struct {
	program *tea.Program
}

func (p programProgress) Started(itemIdentifier string) {
	p.program.Send(receiptadapter.ItemStartedMsg{ID: itemIdentifier})
}

func (p programProgress) Finished(result domain.CirculationResult) {
	p.program.Send(receiptadapter.ItemFinishedMsg{Item: receiptadapter.ItemFromResult(result)})
}

// runFBSProgress runs call behind a progress view on output. When ctx ends
// the view stops and call's context is canceled; runFBSProgress returns once
// call has returned.
func runFBSProgress(ctx context.Context, output io.Writer, label string, total int, call func(context.Context, fbsProgress) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		receiptadapter.NewProgress(label, total),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	callErr := make(chan error, 1)
	go func() {
		err := call(ctx, programProgress{program: p})
		callErr <- err
		p.Send(receiptadapter.DoneMsg{})
	}()

	_, runErr := p.Run()
	cancel()
	err := <-callErr

	if err == nil && runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	return err
}
