package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-repo config file at the repository root.
const LocalConfigFileName = ".brws.toml"

// LocalConfig holds per-repo overrides from .brws.toml.
// Pointer fields and empty strings mean "not set" (inherit from global).
// Tokens, proxy and commands are global-only.
type LocalConfig struct {
	GHEURLHost      string  `toml:"ghe_url_host"`
	GHESSHPort      *uint16 `toml:"ghe_ssh_port"`
	GitLabURLHost   string  `toml:"gitlab_url_host"`
	GitLabSSHPort   *uint16 `toml:"gitlab_ssh_port"`
	ShortCommitHash *bool   `toml:"short_commit_hash"`
}

// LoadLocal reads .brws.toml from repoRoot.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(repoRoot string) (*LocalConfig, error) {
	configFile := filepath.Join(repoRoot, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	md, err := toml.Decode(string(data), &local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unsupported key %q in %s", undecoded[0].String(), configFile)
	}

	if err := validateHost(local.GHEURLHost, "ghe_url_host"); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	if err := validateHost(local.GitLabURLHost, "gitlab_url_host"); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	return &local, nil
}
