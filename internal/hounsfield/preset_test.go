package hounsfield

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPresets_AreValid(t *testing.T) {
	for _, p := range BuiltinPresets {
		w, err := p.Window()
		require.NoError(t, err, p.Name)
		assert.Equal(t, p.Level, w.Level())
		assert.Equal(t, p.Width, w.Width())
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog()

	p, ok := c.Lookup("Lung")
	require.True(t, ok)
	assert.Equal(t, Preset{Name: "lung", Level: -600, Width: 1500}, p)

	_, ok = c.Lookup("kidney")
	assert.False(t, ok)

	_, err := c.Window("kidney")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCatalog_Names_Sorted(t *testing.T) {
	want := []string{"bone", "brain", "liver", "lung", "mediastinum", "soft-tissue", "stroke", "subdural"}
	if diff := cmp.Diff(want, NewCatalog().Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_Merge(t *testing.T) {
	c := NewCatalog()
	doc := []byte(`
presets:
  - name: head-neck
    level: 60
    width: 350
  - name: brain
    level: 35
    width: 90
`)
	require.NoError(t, c.Merge(doc))

	p, ok := c.Lookup("head-neck")
	require.True(t, ok)
	assert.Equal(t, 60, p.Level)

	w, err := c.Window("brain")
	require.NoError(t, err)
	assert.Equal(t, "L=35 W=90", w.String())
}

func TestCatalog_Merge_RejectsInvalidEntries(t *testing.T) {
	cases := map[string]string{
		"zero_width": "presets:\n  - name: flat\n    level: 0\n    width: 0\n",
		"bad_level":  "presets:\n  - name: hot\n    level: 5000\n    width: 10\n",
		"no_name":    "presets:\n  - level: 0\n    width: 10\n",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			c := NewCatalog()
			err := c.Merge([]byte("presets:\n  - name: ok\n    level: 1\n    width: 1\n" + doc[len("presets:\n"):]))
			require.ErrorIs(t, err, ErrInvalidArgument)
			_, ok := c.Lookup("ok")
			assert.False(t, ok, "partial merge")
		})
	}

	err := NewCatalog().Merge([]byte("presets: [1, 2"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, c.Presets(), len(BuiltinPresets))

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets: [{name: spine, level: 250, width: 1000}]\n"), 0o644))

	c, err = LoadCatalog(path)
	require.NoError(t, err)
	w, err := c.Window("SPINE")
	require.NoError(t, err)
	assert.Equal(t, 1000, w.Width())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
