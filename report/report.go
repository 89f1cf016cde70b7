package report

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

// A Report describes one output of the toolkit: a differences chart, a word
// listing or a map, declared in yaml so new reports need no code.
type Report struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        Kind   `yaml:"kind"`

	// Chart parameters
	Title    string  `yaml:"title"`
	XLabel   string  `yaml:"xlabel"`
	YLabel   string  `yaml:"ylabel"`
	Rotation float64 `yaml:"rotation"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`

	// Differences parameters.  Series picks which difference map gets
	// plotted: "value" (the default) or "fatalities".
	IndexColumn string `yaml:"index_column"`
	ValueColumn string `yaml:"value_column"`
	Series      string `yaml:"series"`

	// Words parameters
	TextColumn string `yaml:"text_column"`
	Word       string `yaml:"word"`
	TopWords   int    `yaml:"top_words"`

	// Map parameters
	MapDir string  `yaml:"map_dir"`
	Zoom   float64 `yaml:"zoom"`
}

// What a report renders
type Kind int

const (
	DIFFERENCES Kind = iota
	WORDS
	MAP
)

// Convert Kinds in yaml string form to our internal const representation
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case `Differences`:
		*k = DIFFERENCES
	case `Words`:
		*k = WORDS
	case `Map`:
		*k = MAP
	default:
		return fmt.Errorf("invalid report kind: %s", value.Value)
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case DIFFERENCES:
		return `Differences`
	case WORDS:
		return `Words`
	case MAP:
		return `Map`
	}
	return `Unknown`
}

// Single line help for the report
func (r Report) GetShortHelp() string {
	return fmt.Sprintf("%s: %s", r.Name, r.Description)
}

// Check that the report declares everything its kind needs
func (r Report) Validate() error {
	var errs *multierror.Error

	if r.Name == "" {
		errs = multierror.Append(errs, fmt.Errorf("report needs a name"))
	}

	switch r.Kind {
	case DIFFERENCES:
		if r.IndexColumn == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: differences report needs index_column", r.Name))
		}
		if r.ValueColumn == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: differences report needs value_column", r.Name))
		}
	case WORDS:
		if r.TextColumn == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: words report needs text_column", r.Name))
		}
	case MAP:
		if r.MapDir == "" {
			errs = multierror.Append(errs, fmt.Errorf("%s: map report needs map_dir", r.Name))
		}
	}

	return errs.ErrorOrNil()
}

// Fill in the sizing defaults where the yaml left zeros
func (r *Report) applyDefaults() {
	if r.Width == 0 {
		r.Width = 8
	}
	if r.Height == 0 {
		r.Height = 8
	}
	if r.TopWords == 0 {
		r.TopWords = 3
	}
	if r.Zoom == 0 {
		r.Zoom = 0.5
	}
}
