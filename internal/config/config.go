package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the brws configuration.
type Config struct {
	// GitCommand is the git executable to run (default "git").
	GitCommand string `toml:"git_command"`

	// GHEURLHost is a GitHub Enterprise host that doesn't start with "github.".
	GHEURLHost string `toml:"ghe_url_host"`
	// GHESSHPort is appended to GitHub Enterprise hosts in rendered URLs.
	GHESSHPort uint16 `toml:"ghe_ssh_port"`
	// GitLabURLHost is a self-hosted GitLab host that doesn't start with "gitlab.".
	GitLabURLHost string `toml:"gitlab_url_host"`
	// GitLabSSHPort is appended to self-hosted GitLab hosts in rendered URLs.
	GitLabSSHPort uint16 `toml:"gitlab_ssh_port"`

	GitHubToken string `toml:"github_token"`
	GHEToken    string `toml:"ghe_token"`
	HTTPSProxy  string `toml:"https_proxy"`

	// BrowseCommand replaces the system browser. It receives the URL as its only argument.
	BrowseCommand string `toml:"browse_command"`

	// ShortCommitHash truncates commit hashes in URLs to 7 characters.
	ShortCommitHash bool `toml:"short_commit_hash"`
}

// DefaultGitCommand is used when git_command is not configured
const DefaultGitCommand = "git"

// Default returns the default configuration
func Default() Config {
	return Config{
		GitCommand: DefaultGitCommand,
	}
}

// configPath returns the path to the config file
func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "brws", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "brws", "config.toml"), nil
}

// Load reads config from ~/.config/brws/config.toml and applies environment
// overrides. Returns Default() with env applied if the file doesn't exist.
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		cfg := Default()
		return cfg, ApplyEnv(&cfg, os.LookupEnv)
	}
	return LoadFile(path, os.LookupEnv)
}

// LoadFile reads config from path, then applies overrides from lookup.
func LoadFile(path string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg, lookup); err != nil {
		return Default(), err
	}
	if cfg.GitCommand == "" {
		cfg.GitCommand = DefaultGitCommand
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

const defaultConfig = `# brws configuration
#
# Every key can be overridden with an environment variable named
# GIT_BRWS_<KEY in upper case>, e.g. GIT_BRWS_GHE_URL_HOST.

# Git executable
# git_command = "git"

# GitHub Enterprise host when it does not start with "github."
# ghe_url_host = "code.example.com"

# Port appended to GitHub Enterprise hosts in generated URLs
# ghe_ssh_port = 10022

# Self-hosted GitLab host when it does not start with "gitlab."
# gitlab_url_host = "git.example.com"

# Port appended to self-hosted GitLab hosts in generated URLs
# gitlab_ssh_port = 10022

# API tokens. GITHUB_TOKEN is used when github_token is not set.
# GitHub Enterprise API calls (pull requests) always need ghe_token.
# github_token = ""
# ghe_token = ""

# Proxy for API calls and page probing (defaults to $https_proxy)
# https_proxy = "http://proxy.example.com:8080"

# Command used instead of the system browser; receives the URL
# browse_command = "firefox"

# Use 7 character commit hashes in URLs
# short_commit_hash = false
`

// Init creates a default config file at ~/.config/brws/config.toml.
// Returns the path of the written file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
