package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/farmstead/puzzle"
)

const (
	DefaultConfigDir  = "puzzles"
	DefaultConfigFile = "farmstead.toml"
)

//go:embed puzzles/*.toml
var builtin embed.FS

// Catalog is the set of loaded puzzle definitions keyed by name
type Catalog struct {
	Start  string // First puzzle of the chain
	Source string // Where the catalog was loaded from

	defs  map[string]puzzle.Definition
	order []string
}

// Get returns the named definition
func (c *Catalog) Get(name string) (puzzle.Definition, bool) {
	d, ok := c.defs[name]
	return d, ok
}

// Names returns puzzle names in load order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of puzzles
func (c *Catalog) Len() int {
	return len(c.order)
}

// Check validates every definition and the scene chain
// Returns all problems joined; a failing puzzle is still loadable as a disabled session
func (c *Catalog) Check() error {
	var errs []error
	if _, ok := c.defs[c.Start]; !ok {
		errs = append(errs, fmt.Errorf("%w: start puzzle %q", puzzle.ErrConfigurationMissing, c.Start))
	}
	for _, name := range c.order {
		def := c.defs[name]
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
		}
		if def.NextScene != "" {
			if _, ok := c.defs[def.NextScene]; !ok {
				errs = append(errs, fmt.Errorf("%w: puzzle %q next scene %q", puzzle.ErrConfigurationMissing, name, def.NextScene))
			}
		}
	}
	return errors.Join(errs...)
}

// LoadAuto loads puzzles with priority: customPath > DefaultConfigDir > embedded
func LoadAuto(customPath string) (*Catalog, error) {
	// Priority 1: Custom path from CLI or environment
	if customPath != "" {
		return LoadFromPath(customPath)
	}

	// Priority 2: Default external directory
	if fileExists(filepath.Join(DefaultConfigDir, DefaultConfigFile)) {
		return LoadFromDir(DefaultConfigDir)
	}

	// Priority 3: Embedded built-ins
	return LoadEmbedded()
}

// LoadFromPath loads a catalog from an arbitrary file; includes resolve relative to its directory
func LoadFromPath(configPath string) (*Catalog, error) {
	if !fileExists(configPath) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	return LoadFS(os.DirFS(filepath.Dir(configPath)), filepath.Base(configPath), configPath)
}

// LoadFromDir loads DefaultConfigFile from configDir
func LoadFromDir(configDir string) (*Catalog, error) {
	return LoadFS(os.DirFS(configDir), DefaultConfigFile, configDir)
}

// LoadEmbedded loads the built-in puzzle chain
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(builtin, DefaultConfigDir)
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, DefaultConfigFile, "embedded")
}

// LoadFS loads root from fsys and resolves all includes
func LoadFS(fsys fs.FS, root, source string) (*Catalog, error) {
	c := &Catalog{
		Source: source,
		defs:   make(map[string]puzzle.Definition),
	}
	visited := make(map[string]bool)
	if err := c.loadAndResolve(fsys, path.Clean(root), visited); err != nil {
		return nil, fmt.Errorf("failed to load puzzles from %s: %w", source, err)
	}
	if c.Start == "" && len(c.order) > 0 {
		c.Start = c.order[0]
	}
	return c, nil
}

// loadAndResolve decodes one file, merges its puzzles and recurses into includes
func (c *Catalog) loadAndResolve(fsys fs.FS, name string, visited map[string]bool) error {
	// Circular include detection
	if visited[name] {
		return fmt.Errorf("circular include detected: %s", name)
	}
	visited[name] = true

	var f File
	md, err := toml.DecodeFS(fsys, name, &f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", name, strings.Join(keys, ", "))
	}

	if f.Start != "" {
		if c.Start != "" && c.Start != f.Start {
			return fmt.Errorf("%s: start %q conflicts with %q", name, f.Start, c.Start)
		}
		c.Start = f.Start
	}

	for _, pc := range f.Puzzles {
		if _, exists := c.defs[pc.Name]; exists {
			return fmt.Errorf("%s: duplicate puzzle %q", name, pc.Name)
		}
		def, err := pc.Definition()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.defs[pc.Name] = def
		c.order = append(c.order, pc.Name)
	}

	for _, inc := range f.Include {
		if err := c.loadAndResolve(fsys, path.Join(path.Dir(name), inc), visited); err != nil {
			return fmt.Errorf("include %q: %w", inc, err)
		}
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
