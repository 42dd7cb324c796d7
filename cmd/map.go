package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMapCmd(a *app) *cobra.Command {
	var opts windowOptions
	var gray int

	mapCmd := &cobra.Command{
		Use:   "map [flags] -- HU...",
		Short: "Map Hounsfield units through a window onto [0, 1]",
		Example: `  hwindow map --preset brain -- 0 40 80
  hwindow map --window -600/1500 --gray=16 -- -1000 -600 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.resolve(cmd, a)
			if err != nil {
				return err
			}
			units, err := parseUnits(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range units {
				if !cmd.Flags().Changed("gray") {
					fmt.Fprintf(out, "%s %v\n", h, w.MapLinear(h))
					continue
				}
				g, err := w.MapGray(h, gray)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %d\n", h, g)
			}
			return nil
		},
	}
	opts.register(mapCmd.Flags())
	mapCmd.Flags().IntVar(&gray, "gray", 256, "Quantize onto this many display levels instead of printing [0, 1]")
	mapCmd.Flags().Lookup("gray").NoOptDefVal = "256"
	return mapCmd
}
