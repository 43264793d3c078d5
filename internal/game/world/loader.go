package world

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/galacticdawn/internal/game/dice"
)

// EmptySpace describes the filler used for every unnamed cell.
type EmptySpace struct {
	Name             string
	Description      string
	LongDescriptions []string
}

// Placement binds a named location to its grid coordinate.
type Placement struct {
	Coord    Coord
	Location *Location
}

// Blueprint is the immutable world layout loaded from YAML. Build produces
// an independent Map per session.
type Blueprint struct {
	Size      int
	Empty     EmptySpace
	Locations []Placement
}

// Build returns a fresh Map laid out from the blueprint.
//
// Precondition: bp passed Validate; src must be non-nil.
func (bp *Blueprint) Build(src dice.Source) *Map {
	return build(bp, src)
}

func (bp *Blueprint) emptyAt(src dice.Source) *Location {
	loc := &Location{
		ID:          "empty_space",
		Name:        bp.Empty.Name,
		Description: bp.Empty.Description,
	}
	if n := len(bp.Empty.LongDescriptions); n > 0 {
		loc.LongDescription = bp.Empty.LongDescriptions[src.Intn(n)]
	}
	return loc
}

// Validate checks blueprint invariants.
//
// Postcondition: Returns nil if valid, or an error joining every violation.
func (bp *Blueprint) Validate() error {
	var errs []error
	if bp.Size < 1 {
		errs = append(errs, fmt.Errorf("size must be >= 1, got %d", bp.Size))
	}
	if bp.Empty.Name == "" {
		errs = append(errs, errors.New("empty.name must not be empty"))
	}
	ids := make(map[string]bool)
	cells := make(map[Coord]string)
	for _, p := range bp.Locations {
		loc := p.Location
		if loc.ID == "" {
			errs = append(errs, fmt.Errorf("location at %s: id must not be empty", p.Coord))
			continue
		}
		if ids[loc.ID] {
			errs = append(errs, fmt.Errorf("location %q: duplicate id", loc.ID))
		}
		ids[loc.ID] = true
		if loc.Name == "" {
			errs = append(errs, fmt.Errorf("location %q: name must not be empty", loc.ID))
		}
		if p.Coord.X < 0 || p.Coord.X >= bp.Size || p.Coord.Y < 0 || p.Coord.Y >= bp.Size {
			errs = append(errs, fmt.Errorf("location %q: %s outside %dx%d grid", loc.ID, p.Coord, bp.Size, bp.Size))
		}
		if other, taken := cells[p.Coord]; taken {
			errs = append(errs, fmt.Errorf("location %q: %s already holds %q", loc.ID, p.Coord, other))
		}
		cells[p.Coord] = loc.ID
		if in := loc.Interaction; in != nil {
			switch in.Kind {
			case InteractionExchange:
				if len(in.Requires) == 0 {
					errs = append(errs, fmt.Errorf("location %q: exchange requires at least one item", loc.ID))
				}
			case InteractionRiftGate:
				if in.Enemy == "" {
					errs = append(errs, fmt.Errorf("location %q: rift_gate must name an enemy", loc.ID))
				}
			default:
				errs = append(errs, fmt.Errorf("location %q: unknown interaction kind %q", loc.ID, in.Kind))
			}
		}
		if pz := loc.Puzzle; pz != nil {
			switch pz.Kind {
			case PuzzleRiddle:
				if pz.Hook == "" && pz.Answer == "" {
					errs = append(errs, fmt.Errorf("location %q: riddle needs a hook or an answer", loc.ID))
				}
			case PuzzleStreak:
				if pz.Streak < 1 {
					errs = append(errs, fmt.Errorf("location %q: streak must be >= 1, got %d", loc.ID, pz.Streak))
				}
			default:
				errs = append(errs, fmt.Errorf("location %q: unknown puzzle kind %q", loc.ID, pz.Kind))
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// yamlWorldFile is the top-level YAML structure for the world file.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	Size      int            `yaml:"size"`
	Empty     yamlEmpty      `yaml:"empty"`
	Locations []yamlLocation `yaml:"locations"`
}

type yamlEmpty struct {
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	LongDescriptions []string `yaml:"long_descriptions"`
}

type yamlLocation struct {
	ID              string           `yaml:"id"`
	Name            string           `yaml:"name"`
	X               int              `yaml:"x"`
	Y               int              `yaml:"y"`
	Description     string           `yaml:"description"`
	LongDescription string           `yaml:"long_description"`
	Hostile         bool             `yaml:"hostile"`
	Item            string           `yaml:"item"`
	Interaction     *yamlInteraction `yaml:"interaction"`
	Puzzle          *yamlPuzzle      `yaml:"puzzle"`
}

type yamlInteraction struct {
	Kind            string   `yaml:"kind"`
	Requires        []string `yaml:"requires"`
	Consumes        []string `yaml:"consumes"`
	Grants          []string `yaml:"grants"`
	BlockedBy       string   `yaml:"blocked_by"`
	Enemy           string   `yaml:"enemy"`
	LongDescription string   `yaml:"long_description"`
	Prompt          string   `yaml:"prompt"`
	Activate        []string `yaml:"activate"`
	Success         []string `yaml:"success"`
	Decline         string   `yaml:"decline"`
	Missing         string   `yaml:"missing"`
	Completed       string   `yaml:"completed"`
	Blocked         string   `yaml:"blocked"`
}

type yamlPuzzle struct {
	Kind            string   `yaml:"kind"`
	Hook            string   `yaml:"hook"`
	Answer          string   `yaml:"answer"`
	Streak          int      `yaml:"streak"`
	Reward          []string `yaml:"reward"`
	LongDescription string   `yaml:"long_description"`
	Intro           []string `yaml:"intro"`
	Prompt          string   `yaml:"prompt"`
	Success         []string `yaml:"success"`
	Failure         string   `yaml:"failure"`
	Solved          string   `yaml:"solved"`
}

// LoadBlueprintFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a valid YAML world file.
// Postcondition: Returns a validated Blueprint or a non-nil error.
func LoadBlueprintFromFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadBlueprintFromBytes(data)
}

// LoadBlueprintFromBytes parses and validates a world from YAML bytes.
//
// Postcondition: Returns a validated Blueprint or a non-nil error.
func LoadBlueprintFromBytes(data []byte) (*Blueprint, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}
	bp := convertYAMLWorld(file.World)
	if err := bp.Validate(); err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return bp, nil
}

func convertYAMLWorld(yw yamlWorld) *Blueprint {
	bp := &Blueprint{
		Size: yw.Size,
		Empty: EmptySpace{
			Name:        yw.Empty.Name,
			Description: strings.TrimSpace(yw.Empty.Description),
		},
	}
	for _, d := range yw.Empty.LongDescriptions {
		bp.Empty.LongDescriptions = append(bp.Empty.LongDescriptions, strings.TrimSpace(d))
	}
	for _, yl := range yw.Locations {
		loc := &Location{
			ID:              yl.ID,
			Name:            yl.Name,
			Description:     strings.TrimSpace(yl.Description),
			LongDescription: strings.TrimSpace(yl.LongDescription),
			Hostile:         yl.Hostile,
			ItemID:          yl.Item,
		}
		if yi := yl.Interaction; yi != nil {
			loc.Interaction = &Interaction{
				Kind:            yi.Kind,
				Requires:        yi.Requires,
				Consumes:        yi.Consumes,
				Grants:          yi.Grants,
				BlockedBy:       yi.BlockedBy,
				Enemy:           yi.Enemy,
				LongDescription: strings.TrimSpace(yi.LongDescription),
				Prompt:          yi.Prompt,
				Activate:        yi.Activate,
				Success:         yi.Success,
				Decline:         yi.Decline,
				Missing:         yi.Missing,
				Completed:       yi.Completed,
				Blocked:         yi.Blocked,
			}
		}
		if yp := yl.Puzzle; yp != nil {
			loc.Puzzle = &Puzzle{
				Kind:            yp.Kind,
				Hook:            yp.Hook,
				Answer:          yp.Answer,
				Streak:          yp.Streak,
				Reward:          yp.Reward,
				LongDescription: strings.TrimSpace(yp.LongDescription),
				Intro:           yp.Intro,
				Prompt:          yp.Prompt,
				Success:         yp.Success,
				Failure:         yp.Failure,
				Solved:          yp.Solved,
			}
		}
		bp.Locations = append(bp.Locations, Placement{Coord: Coord{X: yl.X, Y: yl.Y}, Location: loc})
	}
	return bp
}
