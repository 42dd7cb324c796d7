package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/hounsfield/internal/ranged"
)

func newClampCmd(a *app) *cobra.Command {
	var rng intervalValue

	clampCmd := &cobra.Command{
		Use:   "clamp --range [MIN,MAX] -- VALUE...",
		Short: "Store values into a ranged value, clamping those outside the range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			iv := rng.iv
			rv, err := ranged.NewRangedValue(iv.Min(), iv.Max(), iv.Clamp(0))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, v := range values {
				if err := rv.SetValue(v); err != nil {
					a.log.WithError(err).Debug("clamping value")
					if err := rv.SetValue(iv.Clamp(v)); err != nil {
						return err
					}
				}
				fmt.Fprintln(out, rv)
			}
			return nil
		},
	}
	clampCmd.Flags().Var(&rng, "range", "Closed interval written as [MIN,MAX]")
	_ = clampCmd.MarkFlagRequired("range")
	return clampCmd
}
