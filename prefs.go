package uzu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Prefs is a flat key/value preference store persisted as a YAML file.
// Getters return the supplied default when a key is unset or holds a value
// of another type. Changes stay in memory until Save.
//
// Bools are stored as the ints 1 and 0.
type Prefs struct {
	path   string
	values map[string]any
}

// NewPrefs creates an in-memory store. Save on it fails until a path is set
// with SetPath.
func NewPrefs() *Prefs {
	return &Prefs{values: make(map[string]any)}
}

// OpenPrefs loads the store at path. A missing file yields an empty store
// that will be created on the first Save.
func OpenPrefs(path string) (*Prefs, error) {
	p := NewPrefs()
	p.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("uzu: open prefs: %w", err)
	}
	if err := yaml.Unmarshal(data, &p.values); err != nil {
		return nil, fmt.Errorf("uzu: parse prefs %s: %w", path, err)
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	return p, nil
}

// Path returns the file the store saves to.
func (p *Prefs) Path() string { return p.path }

// SetPath changes the file the store saves to.
func (p *Prefs) SetPath(path string) { p.path = path }

// GetString returns the string at key, or def.
func (p *Prefs) GetString(key, def string) string {
	if v, ok := p.values[key].(string); ok {
		return v
	}
	return def
}

// SetString stores a string.
func (p *Prefs) SetString(key, val string) { p.values[key] = val }

// GetInt returns the int at key, or def.
func (p *Prefs) GetInt(key string, def int) int {
	if v, ok := p.values[key].(int); ok {
		return v
	}
	return def
}

// SetInt stores an int.
func (p *Prefs) SetInt(key string, val int) { p.values[key] = val }

// GetFloat returns the float stored at key. Whole numbers come back from YAML
// as ints, so those are accepted too.
func (p *Prefs) GetFloat(key string, def float64) float64 {
	switch v := p.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// SetFloat stores a float.
func (p *Prefs) SetFloat(key string, val float64) { p.values[key] = val }

// GetBool returns the bool at key, or def.
func (p *Prefs) GetBool(key string, def bool) bool {
	d := 0
	if def {
		d = 1
	}
	return p.GetInt(key, d) == 1
}

// SetBool stores a bool as 1 or 0.
func (p *Prefs) SetBool(key string, val bool) {
	if val {
		p.values[key] = 1
	} else {
		p.values[key] = 0
	}
}

// Has reports whether key holds a value.
func (p *Prefs) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Delete removes key.
func (p *Prefs) Delete(key string) { delete(p.values, key) }

// Save writes every preference to disk. The file is replaced atomically.
func (p *Prefs) Save() error {
	if p.path == "" {
		return errors.New("uzu: save prefs: no path set")
	}
	data, err := yaml.Marshal(p.values)
	if err != nil {
		return fmt.Errorf("uzu: encode prefs: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("uzu: save prefs: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("uzu: save prefs: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("uzu: save prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("uzu: save prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("uzu: save prefs: %w", err)
	}
	return nil
}
