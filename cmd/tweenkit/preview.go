package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tweenkit/internal/render"
	"github.com/alexisbeaulieu97/tweenkit/internal/tui/preview"
	"github.com/alexisbeaulieu97/tweenkit/pkg/transform"
)

type previewOptions struct {
	Frames int
	FPS    int
	Print  bool
}

func newPreviewCmd(app *appContext) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <from> <to>",
		Short: "Animate a transition between two values",
		Long: `Play the transition between two colors or numbers frame by frame. Use space
to pause, the arrow keys to step and q to quit. With --print, or when the
output is not a terminal, the frames are printed one per line instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Frames < 2 {
				return fmt.Errorf("--frames must be at least 2, got %d", opts.Frames)
			}

			from, err := parseEndpoint(args[0])
			if err != nil {
				return fmt.Errorf("from: %w", err)
			}
			to, err := parseEndpoint(args[1])
			if err != nil {
				return fmt.Errorf("to: %w", err)
			}

			fn := transform.New([2]any{0.0, 1.0}, [2]any{from, to}, transform.Options{
				InputInterpolation:  app.dispatcher,
				OutputInterpolation: app.dispatcher,
			})
			frames := transform.Frames(fn, 0.0, 1.0, opts.Frames)

			app.log.WithFields(map[string]any{"frames": len(frames), "fps": opts.FPS}).Debug("prepared preview")

			if opts.Print || !isTerminal(cmd) {
				for i, frame := range frames {
					fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", i, render.Plain(frame))
				}
				return nil
			}

			return preview.Run(cmd.Context(), preview.RunOptions{
				Title:     fmt.Sprintf("%s → %s (%s)", args[0], args[1], app.model),
				Frames:    frames,
				FPS:       opts.FPS,
				Input:     cmd.InOrStdin(),
				Output:    cmd.OutOrStdout(),
				AltScreen: true,
			})
		},
	}

	cmd.Flags().IntVarP(&opts.Frames, "frames", "n", 60, "Number of frames, endpoints included")
	cmd.Flags().IntVar(&opts.FPS, "fps", 24, "Playback rate in frames per second")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "Print the frames instead of animating them")

	return cmd
}

func isTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
