package game

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"fxr-query/feature/emevd"
	"fxr-query/feature/msb"
	"fxr-query/feature/tae"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedGame is returned when no profile matches.
var ErrUnsupportedGame = errors.New("game directory is not from a supported game")

//go:embed profiles.yaml
var profilesYAML []byte

// Scripts holds the event script rules of a game.
type Scripts struct {
	Nested []emevd.NestedRule `yaml:"nested"`
	Loose  []emevd.LooseRule  `yaml:"loose"`
}

// Profile describes one supported game.
type Profile struct {
	// Key is the short profile name used in configuration (e.g., "ds3").
	Key string `yaml:"key"`
	// Name is the display name written into reports.
	Name string `yaml:"name"`
	// Detect is the folder name that identifies the game in a directory path.
	Detect string `yaml:"detect"`
	// SceneFormat is the layout of the game's map scenes.
	SceneFormat msb.Format `yaml:"scene_format"`
	// Timeline lists the effect-spawning animation event types.
	Timeline tae.EffectEvents `yaml:"timeline"`
	// ExcludedParams lists param types that are never scanned.
	ExcludedParams []string `yaml:"excluded_params"`
	// Scripts holds the event script rules.
	Scripts Scripts `yaml:"scripts"`
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Profiles decodes the embedded profiles.
func Profiles() ([]Profile, error) {
	return parse(profilesYAML)
}

func parse(data []byte) ([]Profile, error) {
	var f profileFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse game profiles: %w", err)
	}
	for _, p := range f.Profiles {
		if p.Key == "" || p.Detect == "" {
			return nil, fmt.Errorf("game profile %q is missing key or detect", p.Name)
		}
	}
	return f.Profiles, nil
}

// Detect returns the profile whose install folder name occurs in dir.
func Detect(dir string) (*Profile, error) {
	profiles, err := Profiles()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if strings.Contains(dir, profiles[i].Detect) {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedGame, dir)
}

// Lookup returns the profile with the given key.
func Lookup(key string) (*Profile, error) {
	profiles, err := Profiles()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if strings.EqualFold(profiles[i].Key, key) {
			return &profiles[i], nil
		}
	}
	return nil, fmt.Errorf("%w: unknown profile %q", ErrUnsupportedGame, key)
}

// Resolve uses key when set and falls back to detecting dir.
func Resolve(key, dir string) (*Profile, error) {
	if key != "" {
		return Lookup(key)
	}
	return Detect(dir)
}
