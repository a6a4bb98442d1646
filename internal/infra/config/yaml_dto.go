package config

// FileName is the workspace marker and configuration file.
const FileName = "advent.yaml"

type YAMLFile struct {
	Advent YAMLConfig `yaml:"advent"`
}

type YAMLConfig struct {
	Year    *int        `yaml:"year"`
	Paths   YAMLPaths   `yaml:"paths"`
	History YAMLHistory `yaml:"history"`
}

type YAMLPaths struct {
	InputsDir   string `yaml:"inputs_dir"`
	AnswersFile string `yaml:"answers_file"`
	RunsDir     string `yaml:"runs_dir"`
}

type YAMLHistory struct {
	Enabled *bool `yaml:"enabled"`
}
