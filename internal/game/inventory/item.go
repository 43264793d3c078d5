// Package inventory provides item definitions, the item registry, and the
// player's ordered inventory.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind constants for ItemDef.Kind.
const (
	KindWeapon     = "weapon"
	KindShield     = "shield"
	KindConsumable = "consumable"
	KindFragment   = "fragment"
	KindKey        = "key"
	KindResource   = "resource"
)

var validKinds = map[string]bool{
	KindWeapon:     true,
	KindShield:     true,
	KindConsumable: true,
	KindFragment:   true,
	KindKey:        true,
	KindResource:   true,
}

// ItemDef defines the static, immutable properties of an item token.
type ItemDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Postcondition: returns nil iff ID, Name and Kind are all valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of weapon, shield, consumable, fragment, key, resource; got %q", d.Kind))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %w", errors.Join(errs...))
	}
	return nil
}

// itemFile allows a single YAML file to declare many items.
type itemFile struct {
	Items []*ItemDef `yaml:"items"`
}

// LoadItemsFromBytes parses and validates the items declared in data.
func LoadItemsFromBytes(data []byte) ([]*ItemDef, error) {
	var f itemFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items YAML: %w", err)
	}
	for _, d := range f.Items {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("item %q: %w", d.ID, err)
		}
	}
	return f.Items, nil
}

// LoadItems reads all *.yaml and *.yml files from dir and returns the items
// they declare, in file order.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", path, err)
		}
		defs, err := LoadItemsFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: %q: %w", path, err)
		}
		items = append(items, defs...)
	}
	return items, nil
}
