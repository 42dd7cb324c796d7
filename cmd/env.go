package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vipcxj/hounsfield/internal/shell"
)

func newEnvCmd(a *app) *cobra.Command {
	var opts windowOptions
	var shellName, prefix string
	var export bool

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Print shell assignments for a window",
		Long: `Print shell assignments of the window level, width and bounds so that a
calling script can eval the output, e.g.

  eval "$(hwindow env --preset lung --export)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.resolve(cmd, a)
			if err != nil {
				return err
			}
			name := a.cfg.Shell
			if cmd.Flags().Changed("shell") {
				name = shellName
			}
			shellType, err := shell.ShellTypeString(name)
			if err != nil {
				return err
			}
			bounds := w.Bounds()
			vars := []shell.Var{
				{Name: prefix + "LEVEL", Value: strconv.Itoa(w.Level())},
				{Name: prefix + "WIDTH", Value: strconv.Itoa(w.Width())},
				{Name: prefix + "MIN", Value: formatFloat(bounds.Min())},
				{Name: prefix + "MAX", Value: formatFloat(bounds.Max())},
			}
			text, err := shell.Render(shellType, vars, export)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	opts.register(envCmd.Flags())
	envCmd.Flags().StringVar(&shellName, "shell", shell.ShellTypeAuto.String(), "Assignment syntax: auto, sh, powershell or cmd")
	envCmd.Flags().StringVar(&prefix, "prefix", "HWINDOW_", "Prefix of the variable names")
	envCmd.Flags().BoolVar(&export, "export", false, "Export (sh) or persist (powershell, cmd) the variables")
	return envCmd
}
