package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
)

func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if y.Year != nil {
		if *y.Year < 2015 {
			return cfg, invalidField(path, "year", fmt.Sprintf("year %d is before the first event", *y.Year))
		}
		cfg.Year = *y.Year
	}
	if v := strings.TrimSpace(y.Paths.InputsDir); v != "" {
		cfg.Paths.InputsDir = v
	}
	if v := strings.TrimSpace(y.Paths.AnswersFile); v != "" {
		if strings.HasSuffix(v, "/") {
			return cfg, invalidField(path, "paths.answers_file", "must be a file, not a directory")
		}
		cfg.Paths.AnswersFile = v
	}
	if v := strings.TrimSpace(y.Paths.RunsDir); v != "" {
		cfg.Paths.RunsDir = v
	}
	if y.History.Enabled != nil {
		cfg.History.Enabled = *y.History.Enabled
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%w: %s: %s", domain.ErrInvalidConfig, field, msg),
	}
}
