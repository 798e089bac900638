package preview

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions configures a preview session.
type RunOptions struct {
	Title  string
	Frames []any
	FPS    int
	Input  io.Reader
	Output io.Writer
	// AltScreen runs the preview in the terminal's alternate screen.
	AltScreen bool
}

// Run plays frames until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts RunOptions) error {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(opts.Title, opts.Frames, opts.FPS), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
