package domain

// Config represents the advent configuration loaded from advent.yaml.
type Config struct {
	Year    int
	Paths   PathsConfig
	History HistoryConfig
}

type PathsConfig struct {
	InputsDir   string
	AnswersFile string
	RunsDir     string
}

type HistoryConfig struct {
	Enabled bool
}

// DefaultConfig provides sane defaults if advent.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Year: 2025,
		Paths: PathsConfig{
			InputsDir:   "input",
			AnswersFile: "answers.txt",
			RunsDir:     ".advent/runs",
		},
		History: HistoryConfig{Enabled: false},
	}
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root   string
	Config Config
	Days   []int
}
