package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vipcxj/hounsfield/internal/config"
	"github.com/vipcxj/hounsfield/internal/hounsfield"
	applog "github.com/vipcxj/hounsfield/internal/log"
)

const ShortDesc = "Inspect Hounsfield display windows and bounded values"

const LongDesc = `hwindow maps CT radiodensity samples (Hounsfield units, -1024 to 3071)
through a level/width display window onto normalized [0, 1] intensities or
gray levels. Windows come from flags, named presets, or HWINDOW_* environment
variables, and can be exported as shell variables for use in scripts.`

// app carries the state shared by the subcommands of one invocation.
type app struct {
	envFile     string
	presetsFile string

	cfg     config.Config
	log     *logrus.Logger
	catalog *hounsfield.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "hwindow",
		Short:         ShortDesc,
		Long:          LongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Load HWINDOW_* variables from this file if it exists")
	rootCmd.PersistentFlags().StringVar(&a.presetsFile, "presets", "", "YAML preset catalog merged over the built-in presets")

	rootCmd.AddCommand(
		newMapCmd(a),
		newInfoCmd(a),
		newPresetsCmd(a),
		newContainsCmd(a),
		newClampCmd(a),
		newEnvCmd(a),
	)
	return rootCmd
}

// Execute runs hwindow with os.Args and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	logger, err := applog.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	a.log.WithFields(logrus.Fields{
		"command":      cmd.Name(),
		"env_file":     a.envFile,
		"env_level":    cfg.Level,
		"env_width":    cfg.Width,
		"env_preset":   cfg.Preset,
		"presets_file": a.presetsPath(cmd),
	}).Debug("configuration loaded")
	return nil
}

func (a *app) presetsPath(cmd *cobra.Command) string {
	if cmd.Flags().Changed("presets") {
		return a.presetsFile
	}
	return a.cfg.PresetsFile
}

// presets loads the catalog on first use.
func (a *app) presets(cmd *cobra.Command) (*hounsfield.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	c, err := hounsfield.LoadCatalog(a.presetsPath(cmd))
	if err != nil {
		return nil, err
	}
	a.catalog = c
	return c, nil
}
