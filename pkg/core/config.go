package core

// RepoConfig is the repository configuration persisted as the "config" seed
// file inside the control directory. The key names mirror the classic git
// ones so the file reads familiarly, but the encoding is YAML.
type RepoConfig struct {
	Core CoreConfig `yaml:"core" json:"core"`
}

// CoreConfig holds the "core" section of the repository configuration.
type CoreConfig struct {
	// FormatVersion is the layout version of the control directory. This
	// implementation writes and understands version 0 only.
	FormatVersion int `yaml:"repositoryformatversion" json:"repositoryformatversion"`

	// Bare marks a repository without a worktree. Initialization always
	// writes false; the field exists so future layers can flip it.
	Bare bool `yaml:"bare" json:"bare"`
}

// DefaultRepoConfig returns the configuration seeded at initialization.
func DefaultRepoConfig() RepoConfig {
	return RepoConfig{
		Core: CoreConfig{
			FormatVersion: 0,
			Bare:          false,
		},
	}
}
