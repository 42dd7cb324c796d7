package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/hounsfield/internal/hounsfield"
	"github.com/vipcxj/hounsfield/internal/ranged"
)

// windowValue is a pflag.Value accepting LEVEL/WIDTH.
type windowValue struct {
	w *hounsfield.HWindow
}

func (v *windowValue) String() string {
	if v.w == nil {
		return ""
	}
	return strconv.Itoa(v.w.Level()) + "/" + strconv.Itoa(v.w.Width())
}

func (v *windowValue) Set(s string) error {
	w, err := hounsfield.ParseWindow(s)
	if err != nil {
		return err
	}
	v.w = w
	return nil
}

func (v *windowValue) Type() string {
	return "level/width"
}

// intervalValue is a pflag.Value accepting [min,max].
type intervalValue struct {
	iv *ranged.Interval
}

func (v *intervalValue) String() string {
	if v.iv == nil {
		return ""
	}
	return v.iv.String()
}

func (v *intervalValue) Set(s string) error {
	iv, err := ranged.ParseInterval(s)
	if err != nil {
		return err
	}
	v.iv = iv
	return nil
}

func (v *intervalValue) Type() string {
	return "interval"
}

type windowOptions struct {
	level  int
	width  int
	window windowValue
	preset string
}

func (o *windowOptions) register(fs *pflag.FlagSet) {
	fs.IntVarP(&o.level, "level", "l", hounsfield.DefaultLevel, "Window level in Hounsfield units")
	fs.IntVarP(&o.width, "width", "w", hounsfield.DefaultWidth, "Window width in Hounsfield units, at least 1")
	fs.Var(&o.window, "window", "Window as LEVEL/WIDTH, e.g. 40/400")
	fs.StringVarP(&o.preset, "preset", "p", "", "Named window preset, see 'hwindow presets'")
}

// resolve builds the window from, in increasing precedence: the HWINDOW_*
// environment, a preset, --window, then --level and --width.
func (o *windowOptions) resolve(cmd *cobra.Command, a *app) (*hounsfield.HWindow, error) {
	fs := cmd.Flags()
	level, width := a.cfg.Level, a.cfg.Width
	source := "environment"

	preset := a.cfg.Preset
	if fs.Changed("preset") {
		preset = o.preset
	}
	if preset != "" {
		catalog, err := a.presets(cmd)
		if err != nil {
			return nil, err
		}
		p, ok := catalog.Lookup(preset)
		if !ok {
			return nil, errors.Wrapf(hounsfield.ErrInvalidArgument, "unknown preset %q", preset)
		}
		level, width = p.Level, p.Width
		source = "preset " + p.Name
	}
	if o.window.w != nil {
		level, width = o.window.w.Level(), o.window.w.Width()
		source = "flags"
	}
	if fs.Changed("level") {
		level = o.level
		source = "flags"
	}
	if fs.Changed("width") {
		width = o.width
		source = "flags"
	}

	w, err := hounsfield.NewHWindowOf(level, width)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"window_level": w.Level(),
		"window_width": w.Width(),
		"source":       source,
	}).Debug("window resolved")
	return w, nil
}

func parseUnits(args []string) ([]*hounsfield.HUnit, error) {
	units := make([]*hounsfield.HUnit, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(hounsfield.ErrInvalidArgument, "malformed hounsfield value %q", arg)
		}
		h, err := hounsfield.NewHUnitOf(v)
		if err != nil {
			return nil, err
		}
		units = append(units, h)
	}
	return units, nil
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(ranged.ErrInvalidArgument, "malformed number %q", arg)
		}
		values = append(values, f)
	}
	return values, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
