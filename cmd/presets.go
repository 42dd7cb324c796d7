package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	var namesOnly bool

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named window presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.presets(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if namesOnly {
				for _, name := range catalog.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			for _, p := range catalog.Presets() {
				w, err := p.Window()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %s\n", p.Name, w)
			}
			return nil
		},
	}
	presetsCmd.Flags().BoolVar(&namesOnly, "names", false, "Print only the preset names, one per line")
	return presetsCmd
}
