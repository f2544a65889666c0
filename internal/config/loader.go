package config

import (
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/goccy/go-yaml"

	"github.com/terassyi/venueview/internal/errors"
)

//go:embed schema.cue
var schemaCUE string

// blockName is the top-level field holding viewer settings in a config file.
const blockName = "viewer"

// DefaultPath returns the expanded default config file path.
func DefaultPath() (string, error) {
	dir, err := ExpandHome(DefaultConfigDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigFile), nil
}

// Load reads a CUE or YAML config file and layers it over the defaults.
// A file without a viewer block yields the defaults.
func Load(path string) (*Config, error) {
	return ResolveFile(path, Overrides{})
}

// ResolveFile layers the config file at path, then flags, over the defaults.
// An empty path skips the file layer. Errors caused by the file carry its
// path.
func ResolveFile(path string, flags Overrides) (*Config, error) {
	var file Overrides
	if path != "" {
		var err error
		file, err = ReadOverrides(path)
		if err != nil {
			return nil, err
		}
		if _, err := Resolve(file); err != nil {
			return nil, withFile(err, path)
		}
	}
	return Resolve(file, flags)
}

// Resolve layers overrides over the defaults, later layers winning. The
// preset named by the last layer that names one is applied first, beneath
// the explicit fields of every layer.
func Resolve(layers ...Overrides) (*Config, error) {
	cfg := Default()

	var preset *string
	for _, l := range layers {
		if l.Preset != nil {
			preset = l.Preset
		}
	}
	if preset != nil {
		if err := cfg.Apply(Overrides{Preset: preset}); err != nil {
			return nil, err
		}
	}

	for _, l := range layers {
		l.Preset = nil
		if err := cfg.Apply(l); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadOverrides decodes the viewer block of a config file without applying it.
func ReadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, errors.NewConfigError("failed to read config file", err).WithFile(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	case ".cue":
		return decodeCUE(path, data)
	default:
		return Overrides{}, errors.NewInvalidValueError("config", ".cue, .yaml or .yml file", filepath.Base(path))
	}
}

func decodeCUE(path string, data []byte) (Overrides, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return Overrides{}, errors.NewConfigError("failed to compile embedded schema", schema.Err())
	}

	value := ctx.CompileBytes(data, cue.Filename(path))
	if value.Err() != nil {
		return Overrides{}, cueError(path, "failed to compile config", value.Err())
	}

	block := value.LookupPath(cue.ParsePath(blockName))
	if !block.Exists() {
		return Overrides{}, nil
	}

	unified := schema.LookupPath(cue.ParsePath("#Viewer")).Unify(block)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Overrides{}, cueError(path, "config does not match schema", err)
	}

	jsonBytes, err := unified.MarshalJSON()
	if err != nil {
		return Overrides{}, cueError(path, "failed to marshal config", err)
	}
	var o Overrides
	if err := json.Unmarshal(jsonBytes, &o); err != nil {
		return Overrides{}, errors.NewConfigError("failed to unmarshal config", err).WithFile(path)
	}
	return o, nil
}

// cueError attaches the first reported source position, if any.
func cueError(path, message string, err error) *errors.ConfigError {
	for _, pos := range cueerrors.Positions(err) {
		if pos.Filename() == path && pos.Line() > 0 {
			return errors.NewConfigErrorAt(path, pos.Line(), pos.Column(), message, err)
		}
	}
	return errors.NewConfigError(message, err).WithFile(path)
}

func decodeYAML(path string, data []byte) (Overrides, error) {
	var doc struct {
		Viewer *Overrides `yaml:"viewer"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Overrides{}, errors.NewConfigError("failed to parse config", err).WithFile(path)
	}
	if doc.Viewer == nil {
		return Overrides{}, nil
	}
	return *doc.Viewer, nil
}

func withFile(err error, path string) error {
	if cfgErr, ok := err.(*errors.ConfigError); ok {
		return cfgErr.WithFile(path)
	}
	return err
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func itoaSlice(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
