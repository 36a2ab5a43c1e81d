package main

import (
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/ResearchAssistant/internal/panel"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/selection"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/summarizer"
)

func newSummarizeCmd(opts *options) *cobra.Command {
	var (
		suggest bool
		text    string
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize the current selection",
		Long: `Read the text selected in the focused Chrome tab and send it to the
research service. Use --text to skip the browser.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := opts.logger()

			var src selection.Provider
			if cmd.Flags().Changed("text") {
				src = selection.Static(text)
			} else {
				rod := selection.NewRod(opts.cfg.Browser.DebugURL, opts.cfg.Panel.Origins(), log)
				defer rod.Close()
				src = rod
			}

			store, release, err := opts.openNotes(ctx)
			if err != nil {
				return err
			}
			defer release()

			controller := panel.NewController(panel.Deps{
				Selection:  src,
				Summarizer: summarizer.New(opts.cfg.Research.Endpoint),
				Notes:      store,
				View:       newTerminalView(opts.out),
				Logger:     log,
			})
			if suggest {
				controller.Suggest(ctx)
			} else {
				controller.Summarize(ctx)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "Ask for suggestions instead of a summary")
	cmd.Flags().StringVar(&text, "text", "", "Summarize this text instead of the browser selection")
	return cmd
}
