package hounsfield

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Preset is a named level/width pair.
type Preset struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Width int    `yaml:"width"`
}

// Window builds the HWindow described by p.
func (p Preset) Window() (*HWindow, error) {
	return NewHWindowOf(p.Level, p.Width)
}

// BuiltinPresets are the windows commonly used when reading head, chest and
// abdominal CT.
var BuiltinPresets = []Preset{
	{Name: "brain", Level: 40, Width: 80},
	{Name: "subdural", Level: 75, Width: 215},
	{Name: "stroke", Level: 40, Width: 40},
	{Name: "soft-tissue", Level: 40, Width: 400},
	{Name: "mediastinum", Level: 50, Width: 350},
	{Name: "liver", Level: 30, Width: 150},
	{Name: "lung", Level: -600, Width: 1500},
	{Name: "bone", Level: 400, Width: 1800},
}

// Catalog is a set of presets keyed by lower-cased name.
type Catalog struct {
	presets map[string]Preset
}

type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// NewCatalog returns a catalog holding BuiltinPresets.
func NewCatalog() *Catalog {
	c := &Catalog{presets: make(map[string]Preset, len(BuiltinPresets))}
	for _, p := range BuiltinPresets {
		c.presets[strings.ToLower(p.Name)] = p
	}
	return c
}

// LoadCatalog returns the built-in catalog with the presets of the YAML file
// at path merged over it. An empty path loads only the built-ins.
//
// File format:
//
//	presets:
//	  - name: head-neck
//	    level: 60
//	    width: 350
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read presets")
	}
	if err := c.Merge(content); err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return c, nil
}

// Merge decodes a YAML preset document and adds its entries, replacing
// presets with the same name. Nothing is added if any entry is invalid.
func (c *Catalog) Merge(content []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return errors.Wrap(err, "parse presets")
	}
	for i, p := range f.Presets {
		if err := validatePreset(p); err != nil {
			return errors.Wrapf(err, "entry %d", i)
		}
	}
	for _, p := range f.Presets {
		c.presets[strings.ToLower(p.Name)] = p
	}
	return nil
}

// Lookup finds a preset by name, ignoring case.
func (c *Catalog) Lookup(name string) (Preset, bool) {
	p, ok := c.presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// Window returns the window of the named preset.
func (c *Catalog) Window(name string) (*HWindow, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown preset %q", name)
	}
	return p.Window()
}

// Presets returns every preset sorted by name.
func (c *Catalog) Presets() []Preset {
	out := make([]Preset, 0, len(c.presets))
	for _, p := range c.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Names returns the preset names in the order of Presets.
func (c *Catalog) Names() []string {
	presets := c.Presets()
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

func validatePreset(p Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.Wrap(ErrInvalidArgument, "preset name is empty")
	}
	if _, err := p.Window(); err != nil {
		return errors.Wrapf(err, "preset %q", p.Name)
	}
	return nil
}
