package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/ResearchAssistant/internal/panel"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/selection"
)

func newNotesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Show or save the research note",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the stored note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, release, err := opts.openNotes(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			view := newTerminalView(opts.out)
			panel.NewController(panel.Deps{
				Selection: selection.Static(""),
				Notes:     store,
				View:      view,
				Logger:    opts.logger(),
			}).Init(cmd.Context())

			if view.InputValue() == "" {
				view.dim.Fprintln(opts.out, "(no notes saved)")
				return nil
			}
			fmt.Fprintln(opts.out, view.InputValue())
			return nil
		},
	}

	save := &cobra.Command{
		Use:   "save TEXT",
		Short: "Overwrite the stored note with TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, release, err := opts.openNotes(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			view := newTerminalView(opts.out)
			view.SetInputValue(args[0])
			return panel.NewController(panel.Deps{
				Selection: selection.Static(""),
				Notes:     store,
				View:      view,
				Logger:    opts.logger(),
			}).Save(cmd.Context())
		},
	}

	cmd.AddCommand(show, save)
	return cmd
}
