package linebreak

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSettingsFile is the settings file looked up in the working directory.
const DefaultSettingsFile = ".linebreak.yaml"

// Settings is the file and front-matter form of Options. Nil fields keep the
// value from the layer below.
type Settings struct {
	Enabled           *bool    `yaml:"enabled,omitempty"`
	MinSentenceLength *int     `yaml:"min-sentence-length,omitempty"`
	ColonMinLength    *int     `yaml:"colon-min-length,omitempty"`
	MinPartLength     *int     `yaml:"min-part-length,omitempty"`
	DashMinLength     *int     `yaml:"dash-min-length,omitempty"`
	VeryLongLength    *int     `yaml:"very-long-length,omitempty"`
	Abbreviations     []string `yaml:"abbreviations,omitempty"`
}

// UnmarshalYAML accepts either a mapping or a bare boolean, so front matter
// can say "linebreak: false".
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("linebreak settings: expected mapping or boolean: %w", err)
		}
		*s = Settings{Enabled: &enabled}
		return nil
	}
	type plain Settings
	return node.Decode((*plain)(s))
}

// Merge returns s with every field set in o taking precedence.
func (s Settings) Merge(o Settings) Settings {
	if o.Enabled != nil {
		s.Enabled = o.Enabled
	}
	if o.MinSentenceLength != nil {
		s.MinSentenceLength = o.MinSentenceLength
	}
	if o.ColonMinLength != nil {
		s.ColonMinLength = o.ColonMinLength
	}
	if o.MinPartLength != nil {
		s.MinPartLength = o.MinPartLength
	}
	if o.DashMinLength != nil {
		s.DashMinLength = o.DashMinLength
	}
	if o.VeryLongLength != nil {
		s.VeryLongLength = o.VeryLongLength
	}
	if o.Abbreviations != nil {
		s.Abbreviations = o.Abbreviations
	}
	return s
}

// Options converts the set fields of s to Options.
func (s Settings) Options() []Option {
	var opts []Option
	if s.MinSentenceLength != nil {
		opts = append(opts, WithMinSentenceLength(*s.MinSentenceLength))
	}
	if s.ColonMinLength != nil {
		opts = append(opts, WithColonMinLength(*s.ColonMinLength))
	}
	if s.MinPartLength != nil {
		opts = append(opts, WithMinPartLength(*s.MinPartLength))
	}
	if s.DashMinLength != nil {
		opts = append(opts, WithDashMinLength(*s.DashMinLength))
	}
	if s.VeryLongLength != nil {
		opts = append(opts, WithVeryLongLength(*s.VeryLongLength))
	}
	if s.Abbreviations != nil {
		opts = append(opts, WithAbbreviations(s.Abbreviations))
	}
	return opts
}

// Validate rejects negative thresholds.
func (s Settings) Validate() error {
	fields := []struct {
		name  string
		value *int
	}{
		{"min-sentence-length", s.MinSentenceLength},
		{"colon-min-length", s.ColonMinLength},
		{"min-part-length", s.MinPartLength},
		{"dash-min-length", s.DashMinLength},
		{"very-long-length", s.VeryLongLength},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %d", f.name, *f.value)
		}
	}
	return nil
}

// IsEnabled reports whether reflow is enabled.
func (s Settings) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadDefaultSettings reads DefaultSettingsFile from dir when it exists.
// A missing file yields zero Settings and found == false.
func LoadDefaultSettings(dir string) (s Settings, found bool, err error) {
	s, err = LoadSettings(filepath.Join(dir, DefaultSettingsFile))
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}
	return s, true, nil
}

// parseFrontMatterSettings extracts the "linebreak" key from YAML front matter.
func parseFrontMatterSettings(yamlText string) (Settings, bool, error) {
	var doc struct {
		Linebreak *Settings `yaml:"linebreak"`
	}
	if err := yaml.Unmarshal([]byte(yamlText), &doc); err != nil {
		return Settings{}, false, err
	}
	if doc.Linebreak == nil {
		return Settings{}, false, nil
	}
	if err := doc.Linebreak.Validate(); err != nil {
		return Settings{}, false, err
	}
	return *doc.Linebreak, true, nil
}
