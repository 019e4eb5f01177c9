package definition

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/screenflow"
	"github.com/aretw0/screenflow/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for file extensions with no known encoding.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// ChoiceEdge routes one choice index of a choice screen.
type ChoiceEdge struct {
	Choice int    `json:"choice" yaml:"choice" toml:"choice" mapstructure:"choice"`
	To     string `json:"to" yaml:"to" toml:"to" mapstructure:"to"`
}

// Screen describes one node of the graph.
type Screen struct {
	Name    string       `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Kind    string       `json:"kind" yaml:"kind" toml:"kind" mapstructure:"kind"`
	Lazy    bool         `json:"lazy,omitempty" yaml:"lazy,omitempty" toml:"lazy,omitempty" mapstructure:"lazy"`
	Next    string       `json:"next,omitempty" yaml:"next,omitempty" toml:"next,omitempty" mapstructure:"next"`
	Choices []ChoiceEdge `json:"choices,omitempty" yaml:"choices,omitempty" toml:"choices,omitempty" mapstructure:"choices"`
}

// Definition is a decoded graph file.
type Definition struct {
	Start   string   `json:"start" yaml:"start" toml:"start" mapstructure:"start"`
	Screens []Screen `json:"screens" yaml:"screens" toml:"screens" mapstructure:"screens"`
}

// Provider supplies the screen values for the names a definition mentions.
type Provider interface {
	Transition(name string) domain.TransitionFactory
	Choice(name string) domain.ChoiceFactory
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads and parses the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse decodes data in the given format and checks it for structural mistakes.
// Edges pointing at unknown screens are not checked here; that is the job of the
// graph validator.
func Parse(data []byte, format Format) (*Definition, error) {
	raw := make(map[string]any)
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}

	if err := def.Check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Check reports structural mistakes: missing names, duplicates, unknown kinds and
// edges that do not match the screen's kind.
func (d *Definition) Check() error {
	var errs []error
	if d.Start == "" {
		errs = append(errs, domain.ErrMissingStartingScreen)
	}

	seen := make(map[string]bool, len(d.Screens))
	for i, s := range d.Screens {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("screen #%d: %w", i, domain.ErrInvalidName))
			continue
		}
		if seen[s.Name] {
			errs = append(errs, domain.NewScreenError("define", s.Name, domain.ErrDuplicateScreen))
		}
		seen[s.Name] = true

		kind, err := domain.ParseKind(s.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("screen %q: %w", s.Name, err))
			continue
		}
		switch kind {
		case domain.KindTransition:
			if len(s.Choices) > 0 {
				errs = append(errs, fmt.Errorf("screen %q: transition screens take next, not choices", s.Name))
			}
		case domain.KindChoice:
			if s.Next != "" {
				errs = append(errs, fmt.Errorf("screen %q: choice screens take choices, not next", s.Name))
			}
			for _, c := range s.Choices {
				if c.Choice < 0 {
					errs = append(errs, &domain.ScreenError{Op: "define", Name: s.Name, Choice: c.Choice, Err: domain.ErrInvalidChoice})
				}
			}
		}
	}
	return errors.Join(errs...)
}

// Builder registers every screen and edge of d on a new builder. Eager screens are
// created immediately from p; lazy ones are registered as factories.
func (d *Definition) Builder(p Provider, opts ...screenflow.BuilderOption) *screenflow.Builder {
	b := screenflow.NewBuilder(opts...)
	for _, s := range d.Screens {
		kind, _ := domain.ParseKind(s.Kind)
		switch kind {
		case domain.KindTransition:
			factory := p.Transition(s.Name)
			// A nil factory goes through the factory path so the builder records ErrNilScreen.
			if s.Lazy || factory == nil {
				b.RegisterTransitionFactory(s.Name, factory)
			} else {
				b.RegisterTransition(s.Name, factory())
			}
		case domain.KindChoice:
			factory := p.Choice(s.Name)
			if s.Lazy || factory == nil {
				b.RegisterChoiceFactory(s.Name, factory)
			} else {
				b.RegisterChoice(s.Name, factory())
			}
		}
	}

	// Edges go in after every screen is known so order in the file does not matter.
	for _, s := range d.Screens {
		if s.Next != "" {
			b.SetSuccession(s.Name, s.Next)
		}
		for _, c := range s.Choices {
			b.Choice(s.Name, c.To, c.Choice)
		}
	}
	if d.Start != "" {
		b.WithStartingScreen(d.Start)
	}
	return b
}

// Build is Builder followed by Build.
func (d *Definition) Build(p Provider, opts ...screenflow.Option) (*screenflow.Controller, error) {
	return d.Builder(p).Build(opts...)
}
