package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newContainsCmd(a *app) *cobra.Command {
	var rng intervalValue

	containsCmd := &cobra.Command{
		Use:     "contains --range [MIN,MAX] -- VALUE...",
		Short:   "Report whether values lie inside a closed interval",
		Example: `  hwindow contains --range [-1024,3071] -- -1024 3072 nan`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			a.log.WithField("range", rng.iv.String()).Debug("checking values")
			out := cmd.OutOrStdout()
			for _, v := range values {
				fmt.Fprintf(out, "%v %t\n", v, rng.iv.Contains(v))
			}
			return nil
		},
	}
	containsCmd.Flags().Var(&rng, "range", "Closed interval written as [MIN,MAX]")
	_ = containsCmd.MarkFlagRequired("range")
	return containsCmd
}
