// Package npc provides enemy template definitions and the session-scoped
// enemy registry.
package npc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/galacticdawn/internal/game/world"
)

// Victory is the data-table row applied when an enemy is defeated.
type Victory struct {
	// Rewards are item IDs appended to the player's inventory in order.
	Rewards []string `yaml:"rewards"`
	// Announcement lines are shown after the defeat line and before rewards.
	Announcement []string `yaml:"announcement"`
	// LongDescription permanently replaces the location's long description.
	LongDescription string `yaml:"long_description"`
	// Final marks the boss whose defeat wins the game.
	Final bool `yaml:"final"`
}

// Template defines one enemy loaded from YAML.
type Template struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	MaxHP     int    `yaml:"max_hp"`
	MinDamage int    `yaml:"min_damage"`
	MaxDamage int    `yaml:"max_damage"`
	// Coord binds the enemy to the location the fight command resolves.
	Coord world.Coord `yaml:"coord"`
	// Summoned enemies are never bound by Coord; an interaction starts them.
	Summoned bool `yaml:"summoned"`

	Intro string `yaml:"intro"`
	// IntroAfterEvent replaces Intro once the bound location's event has triggered.
	IntroAfterEvent string `yaml:"intro_after_event"`
	// Aftermath is shown when a fight is requested but the enemy is unavailable.
	Aftermath string `yaml:"aftermath"`
	// PeacefulOnEvent makes the enemy unavailable once the location's event has
	// triggered, e.g. after a completed trade.
	PeacefulOnEvent bool `yaml:"peaceful_on_event"`

	Victory Victory `yaml:"victory"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff every invariant holds; otherwise an error
// joining every violation.
func (t *Template) Validate() error {
	if t.ID == "" {
		return errors.New("npc template: id must not be empty")
	}
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if t.MaxHP < 1 {
		errs = append(errs, fmt.Errorf("max_hp must be >= 1, got %d", t.MaxHP))
	}
	if t.MinDamage < 0 {
		errs = append(errs, fmt.Errorf("min_damage must be >= 0, got %d", t.MinDamage))
	}
	if t.MaxDamage < t.MinDamage {
		errs = append(errs, fmt.Errorf("max_damage %d must be >= min_damage %d", t.MaxDamage, t.MinDamage))
	}
	if !t.Summoned && (t.Coord.X < 0 || t.Coord.Y < 0) {
		errs = append(errs, fmt.Errorf("coord %s must not be negative", t.Coord))
	}
	if len(errs) > 0 {
		return fmt.Errorf("npc template %q: %w", t.ID, errors.Join(errs...))
	}
	return nil
}

// IntroFor returns the intro line for the bound location's event state.
func (t *Template) IntroFor(eventTriggered bool) string {
	if eventTriggered && t.IntroAfterEvent != "" {
		return t.IntroAfterEvent
	}
	return t.Intro
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	tmpl.Intro = strings.TrimSpace(tmpl.Intro)
	tmpl.IntroAfterEvent = strings.TrimSpace(tmpl.IntroAfterEvent)
	tmpl.Victory.LongDescription = strings.TrimSpace(tmpl.Victory.LongDescription)
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
