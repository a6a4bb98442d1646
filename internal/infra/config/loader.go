package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/advent/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads advent.yaml from the workspace root and applies it on top of
// the defaults. A missing file is not an error.
func Load(root string) (domain.Config, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y YAMLFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, y.Advent)
}

// Marshal renders cfg in the advent.yaml layout.
func Marshal(cfg domain.Config) ([]byte, error) {
	year := cfg.Year
	enabled := cfg.History.Enabled
	return yaml.Marshal(YAMLFile{Advent: YAMLConfig{
		Year: &year,
		Paths: YAMLPaths{
			InputsDir:   cfg.Paths.InputsDir,
			AnswersFile: cfg.Paths.AnswersFile,
			RunsDir:     cfg.Paths.RunsDir,
		},
		History: YAMLHistory{Enabled: &enabled},
	}})
}
