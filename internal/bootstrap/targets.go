package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyTarget              = errors.New("target needs both series and version")
	ErrUnsupportedTargetsFormat = errors.New("unsupported targets file format")
	ErrNoTargets                = errors.New("targets file lists no targets")
)

// targetsFile is the on-disk layout, [[target]] tables in TOML or a
// targets: list in YAML.
type targetsFile struct {
	Targets []Target `toml:"target" yaml:"targets"`
}

// LoadTargets reads an ordered target list from a .toml, .yaml or .yml file.
func LoadTargets(path string) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets: %w", err)
	}

	var file targetsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTargetsFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("decode targets %s: %w", path, err)
	}

	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTargets, path)
	}
	for i, t := range file.Targets {
		t.Series, t.Version = strings.TrimSpace(t.Series), strings.TrimSpace(t.Version)
		if t.Series == "" || t.Version == "" {
			return nil, fmt.Errorf("target %d: %w", i+1, ErrEmptyTarget)
		}
		file.Targets[i] = t
	}
	return file.Targets, nil
}
