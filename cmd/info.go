package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	var opts windowOptions

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the level, width and bounds of a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.resolve(cmd, a)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "window:  %s\n", w)
			fmt.Fprintf(out, "bounds:  %s\n", w.Bounds())
			if visible, ok := w.Visible(); ok {
				fmt.Fprintf(out, "visible: %s\n", visible)
			} else {
				fmt.Fprintln(out, "visible: none")
			}
			return nil
		},
	}
	opts.register(infoCmd.Flags())
	return infoCmd
}
