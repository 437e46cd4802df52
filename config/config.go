// Package config loads the puzzle-specific board constants (height, width,
// port) that parameterize the otherwise puzzle-agnostic search engine. The
// engine itself (geometry, piece, board, search) never imports this package;
// it is the ambient layer that hands the core a board.Config.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"stormyseas/board"
	"stormyseas/geometry"
)

// OuterConfig is the generic envelope every config document in this project
// shares: a Kind discriminator and a Def payload whose shape depends on Kind,
// so other "kinds" of config (server params, ...) could share the same
// envelope and loader in the future.
type OuterConfig struct {
	Kind string      `mapstructure:"kind"`
	Def  interface{} `mapstructure:"def"`
}

// portSpec and boardSpec mirror the YAML document's "def" shape for decoding
// with yaml.v3, which is then translated into board.Config's geometry types.
type portSpec struct {
	Front positionSpec `yaml:"front"`
	Back  positionSpec `yaml:"back"`
}

type positionSpec struct {
	Row    int `yaml:"row"`
	Column int `yaml:"column"`
}

type boardSpec struct {
	Height int      `yaml:"height"`
	Width  int      `yaml:"width"`
	Port   portSpec `yaml:"port"`
}

// Load reads a YAML document of the form:
//
//	kind: board
//	def:
//	  height: 8
//	  width: 9
//	  port:
//	    front: {row: 7, column: 5}
//	    back: {row: 6, column: 5}
//
// using a two-stage viper/yaml.v3 pattern: viper unmarshals the generic
// envelope, then the Def payload is re-marshaled to YAML bytes and
// unmarshaled into the concrete boardSpec. A single-stage viper.Unmarshal
// into board.Config directly would be shorter, but keeping the envelope is
// what lets this loader grow other config "kinds" later without changing
// its shape.
func Load(path string) (board.Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return board.Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	outer := &OuterConfig{}
	if err := vp.Unmarshal(outer); err != nil {
		return board.Config{}, fmt.Errorf("config: decoding envelope: %w", err)
	}

	def, err := yaml.Marshal(outer.Def)
	if err != nil {
		return board.Config{}, fmt.Errorf("config: re-marshaling def: %w", err)
	}

	spec := &boardSpec{}
	if err := yaml.Unmarshal(def, spec); err != nil {
		return board.Config{}, fmt.Errorf("config: decoding board def: %w", err)
	}

	return spec.toBoardConfig(), nil
}

func (s *boardSpec) toBoardConfig() board.Config {
	return board.Config{
		Height: s.Height,
		Width:  s.Width,
		PortFront: geometry.Position{
			Row: s.Port.Front.Row, Column: s.Port.Front.Column,
		},
		PortBack: geometry.Position{
			Row: s.Port.Back.Row, Column: s.Port.Back.Column,
		},
	}
}

// Reference returns the hard-coded reference puzzle constants (H=8, W=9,
// port front=(7,5) back=(6,5)), for use when no config file is supplied.
func Reference() board.Config {
	return board.Config{
		Height:    8,
		Width:     9,
		PortFront: geometry.Position{Row: 7, Column: 5},
		PortBack:  geometry.Position{Row: 6, Column: 5},
	}
}
