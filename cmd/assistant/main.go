package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/notes"
)

// options holds flags shared by every subcommand.
type options struct {
	cfg     *config.Config
	verbose bool
	out     io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{cfg: config.LoadOrDefault(), out: out}

	root := &cobra.Command{
		Use:   "assistant",
		Short: "Research assistant from the terminal",
		Long: `Summarize the text selected in Chrome and keep research notes.

Available subcommands:
  summarize - Summarize the current selection (or --text)
  notes     - Show or save the research note`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfg.Research.Endpoint, "endpoint", opts.cfg.Research.Endpoint, "Research service endpoint")
	flags.StringVar(&opts.cfg.Browser.DebugURL, "browser", opts.cfg.Browser.DebugURL, "Chrome DevTools URL")
	flags.StringVar(&opts.cfg.Storage.Driver, "storage", opts.cfg.Storage.Driver, "Note store driver (file, sqlite, redis, memory)")
	flags.StringVar(&opts.cfg.Storage.Path, "storage-path", opts.cfg.Storage.Path, "Note store directory")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(newSummarizeCmd(opts), newNotesCmd(opts))
	return root
}

func (o *options) logger() *logging.Logger {
	if !o.verbose {
		return logging.NewNop()
	}
	return logging.NewDevelopment()
}

// openNotes opens the configured store and returns the note facade with a
// release function.
func (o *options) openNotes(ctx context.Context) (*notes.Notes, func(), error) {
	store, err := notes.Open(ctx, o.cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("open note store: %w", err)
	}
	return notes.New(store), func() { _ = store.Close() }, nil
}
