package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/antontrye/serverless-dotenv-plugin/internal/dotenv"
)

// Service is the root of a service manifest. Only the sections the plugin
// reads or mutates are modeled; unknown sections are dropped on decode.
type Service struct {
	Service   string               `yaml:"service,omitempty"`
	Provider  Provider             `yaml:"provider"`
	Functions map[string]*Function `yaml:"functions,omitempty"`
	Custom    Custom               `yaml:"custom,omitempty"`
}

// Provider carries the deployment-wide settings, including the global
// environment map the plugin populates in default mode.
type Provider struct {
	Name        string            `yaml:"name,omitempty"`
	Runtime     string            `yaml:"runtime,omitempty"`
	Stage       string            `yaml:"stage,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
}

// Function is a single function record. Environment values are pointers so
// that a whitelisted key with no resolved value stays declared with an
// explicit null instead of being dropped.
type Function struct {
	Handler     string             `yaml:"handler,omitempty"`
	Environment map[string]*string `yaml:"environment,omitempty"`
	Dotenv      *FunctionDotenv    `yaml:"dotenv,omitempty"`
}

// FunctionDotenv holds the per-function whitelist of keys the function wants
// pulled from the merged env-file map in separate mode.
type FunctionDotenv struct {
	Environment []string `yaml:"environment,omitempty"`
}

// Custom is the custom section; the plugin only reads its dotenv block.
type Custom struct {
	Dotenv *DotenvBlock `yaml:"dotenv,omitempty"`
}

// DotenvBlock is the raw custom.dotenv configuration as written in YAML.
type DotenvBlock struct {
	Path     StringList `yaml:"path,omitempty"`
	BasePath string     `yaml:"basePath,omitempty"`
	Include  []string   `yaml:"include,omitempty"`
	Exclude  []string   `yaml:"exclude,omitempty"`
	Separate bool       `yaml:"separate,omitempty"`
	Required Required   `yaml:"required,omitempty"`
	Logging  *bool      `yaml:"logging,omitempty"`
}

// Required groups the hard-failure switches of the dotenv block.
type Required struct {
	File bool `yaml:"file,omitempty"`
}

// StringList decodes either a single YAML scalar or a sequence of scalars
// into a slice, so that `path: .env.custom` and `path: [a, b]` both work.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*l = StringList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := node.Decode(&many); err != nil {
			return err
		}
		*l = StringList(many)
		return nil
	default:
		return fmt.Errorf("line %d: path must be a string or a list of strings", node.Line)
	}
}

// Load reads and decodes a service manifest from path.
func Load(path string) (*Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var service Service
	if err := yaml.Unmarshal(data, &service); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}
	return &service, nil
}

// Encode renders the service back to YAML, including any environment maps
// the plugin has written into it.
func (s *Service) Encode() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return data, nil
}

// Validate checks the parts of the manifest the plugin depends on: function
// dotenv whitelists must contain non-empty key names.
func (s *Service) Validate() error {
	for name, fn := range s.Functions {
		if fn == nil || fn.Dotenv == nil {
			continue
		}
		for _, key := range fn.Dotenv.Environment {
			if key == "" {
				return fmt.Errorf("function %s: dotenv.environment entries must be non-empty strings", name)
			}
		}
	}
	return nil
}

// DotenvConfig snapshots the custom.dotenv block into the pipeline's
// configuration type. Logging defaults to on when the block leaves it unset.
func (s *Service) DotenvConfig() dotenv.Config {
	blk := s.Custom.Dotenv
	if blk == nil {
		return dotenv.Config{Logging: true}
	}
	return dotenv.Config{
		Paths:        append([]string(nil), blk.Path...),
		BasePath:     blk.BasePath,
		Include:      cloneKeyList(blk.Include),
		Exclude:      cloneKeyList(blk.Exclude),
		Separate:     blk.Separate,
		RequiredFile: blk.Required.File,
		Logging:      blk.Logging == nil || *blk.Logging,
	}
}

// cloneKeyList copies a key list while keeping the nil/empty distinction: a
// list that is present but empty still means "set" to the filter.
func cloneKeyList(keys []string) []string {
	if keys == nil {
		return nil
	}
	return append([]string{}, keys...)
}
