// internal/config/config.go
//
// This package handles configuration and the .staletrack directory
// structure. Every project tracked with staletrack gets a .staletrack/
// folder created in its root:
//
// .staletrack/
// ├── config.yaml   <- credential table and reviewer assignment
// ├── state/        <- persisted articles, drafts and login session
// └── logs/         <- activity log shown in the UI footer

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the name of the directory we create in each project.
	AppDir = ".staletrack"

	// HomeEnvVar overrides the project directory when set.
	HomeEnvVar = "STALETRACK_HOME"

	defaultReviewer = "admin"
)

const defaultConfigYAML = `# staletrack configuration
version: 1

# Credential table. Not a security boundary: passwords are plain text
# and compared verbatim. Swap the auth provider for anything real.
credentials:
  user: user
  admin: admin

# The one username granted the reviewer role. Everyone else in the
# table signs in as a checker.
reviewer: admin
`

// Settings models .staletrack/config.yaml.
type Settings struct {
	Version     int               `yaml:"version"`
	Credentials map[string]string `yaml:"credentials"`
	Reviewer    string            `yaml:"reviewer"`
}

// Config holds the runtime configuration for staletrack.
type Config struct {
	// ProjectDir is the directory the user ran `staletrack` from,
	// or STALETRACK_HOME when that is set.
	ProjectDir string

	// AppProjectDir is ProjectDir/.staletrack.
	AppProjectDir string

	Settings Settings
}

// InitAppDir creates the .staletrack directory structure in the given
// project directory and writes a default config.yaml if none exists.
// Called once at startup before the TUI launches.
func InitAppDir(projectDir string) error {
	appDir := filepath.Join(projectDir, AppDir)

	dirs := []string{
		filepath.Join(appDir, "state"),
		filepath.Join(appDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return ensureConfigFile(filepath.Join(appDir, "config.yaml"))
}

// NewConfig creates a Config populated from the project's config.yaml.
func NewConfig(projectDir string) (*Config, error) {
	c := &Config{
		ProjectDir:    projectDir,
		AppProjectDir: filepath.Join(projectDir, AppDir),
		Settings:      defaultSettings(),
	}
	if err := c.loadSettings(); err != nil {
		return nil, err
	}
	return c, nil
}

// StateDir returns the directory holding the persisted JSON collections.
func (c *Config) StateDir() string {
	return filepath.Join(c.AppProjectDir, "state")
}

// LogsDir returns the directory holding the activity log.
func (c *Config) LogsDir() string {
	return filepath.Join(c.AppProjectDir, "logs")
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.AppProjectDir, "config.yaml")
}

// ArticlesPath returns the path to the persisted article date map.
func (c *Config) ArticlesPath() string {
	return filepath.Join(c.StateDir(), "articles.json")
}

// DraftsPath returns the path to the persisted draft list.
func (c *Config) DraftsPath() string {
	return filepath.Join(c.StateDir(), "drafts.json")
}

// SessionPath returns the path to the persisted login session.
func (c *Config) SessionPath() string {
	return filepath.Join(c.StateDir(), "session.json")
}

// ActivityLogPath returns the path to the activity log file.
func (c *Config) ActivityLogPath() string {
	return filepath.Join(c.LogsDir(), "activity.log")
}

// Credentials returns the configured username/password table.
func (c *Config) Credentials() map[string]string {
	return c.Settings.Credentials
}

// Reviewer returns the username that signs in with the reviewer role.
func (c *Config) Reviewer() string {
	return c.Settings.Reviewer
}

func (c *Config) loadSettings() error {
	data, err := os.ReadFile(c.ConfigPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// No config yet; run with defaults.
			return nil
		}
		return fmt.Errorf("read %s: %w", c.ConfigPath(), err)
	}
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parse %s: %w", c.ConfigPath(), err)
	}
	settings.applyDefaults()
	if err := settings.validate(); err != nil {
		return fmt.Errorf("%s: %w", c.ConfigPath(), err)
	}
	c.Settings = settings
	return nil
}

func defaultSettings() Settings {
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &settings); err != nil {
		// The embedded default must parse; fall back to the bare minimum.
		settings = Settings{
			Version:     1,
			Credentials: map[string]string{"user": "user", "admin": "admin"},
			Reviewer:    defaultReviewer,
		}
	}
	return settings
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if s.Reviewer == "" {
		s.Reviewer = defaultReviewer
	}
}

func (s Settings) validate() error {
	if len(s.Credentials) == 0 {
		return fmt.Errorf("credentials table is empty")
	}
	reviewer := strings.TrimSpace(s.Reviewer)
	if reviewer == "" {
		return fmt.Errorf("reviewer username is required")
	}
	if _, ok := s.Credentials[reviewer]; !ok {
		return fmt.Errorf("reviewer %q is not in the credentials table", reviewer)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
