package maze

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layouts.yaml
var builtinLayouts []byte

type layoutFile struct {
	Mazes []layoutDef `yaml:"mazes"`
}

type layoutDef struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Catalog is an ordered set of grids. Days cycle through it.
type Catalog struct {
	grids []*Grid
}

// ParseCatalog decodes a YAML layout document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("maze: decode layouts: %w", err)
	}
	if len(f.Mazes) == 0 {
		return nil, fmt.Errorf("%w: document lists no mazes", ErrMalformedLayout)
	}
	c := &Catalog{grids: make([]*Grid, 0, len(f.Mazes))}
	for i, def := range f.Mazes {
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("maze-%d", i)
		}
		g, err := NewGrid(name, def.Rows)
		if err != nil {
			return nil, err
		}
		c.grids = append(c.grids, g)
	}
	return c, nil
}

// LoadCatalog reads a YAML layout file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied layout path
	if err != nil {
		return nil, fmt.Errorf("maze: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the built-in layouts.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(builtinLayouts)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog wraps already-built grids.
func NewCatalog(grids ...*Grid) *Catalog {
	return &Catalog{grids: grids}
}

// Len returns the number of layouts.
func (c *Catalog) Len() int { return len(c.grids) }

// ForDay returns the layout used on a 1-based day index.
func (c *Catalog) ForDay(day int) *Grid {
	if day < 1 {
		day = 1
	}
	return c.grids[(day-1)%len(c.grids)]
}

// ByName looks up a layout by name.
func (c *Catalog) ByName(name string) (*Grid, bool) {
	for _, g := range c.grids {
		if g.name == name {
			return g, true
		}
	}
	return nil, false
}
