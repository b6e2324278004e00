package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GIT_BRWS_"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with GIT_BRWS_* variables, then fills tokens and
// proxy from the conventional global variables when still unset.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	port := func(key string, dst *uint16) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || v == "" {
			return nil
		}
		p, err := parsePort(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err)
		}
		*dst = p
		return nil
	}

	str("GIT_COMMAND", &cfg.GitCommand)
	str("GHE_URL_HOST", &cfg.GHEURLHost)
	str("GITLAB_URL_HOST", &cfg.GitLabURLHost)
	str("GITHUB_TOKEN", &cfg.GitHubToken)
	str("GHE_TOKEN", &cfg.GHEToken)
	str("HTTPS_PROXY", &cfg.HTTPSProxy)
	str("BROWSE_COMMAND", &cfg.BrowseCommand)

	if err := port("GHE_SSH_PORT", &cfg.GHESSHPort); err != nil {
		return err
	}
	if err := port("GITLAB_SSH_PORT", &cfg.GitLabSSHPort); err != nil {
		return err
	}

	if v, ok := lookup(EnvPrefix + "SHORT_COMMIT_HASH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sSHORT_COMMIT_HASH %q: must be true or false", EnvPrefix, v)
		}
		cfg.ShortCommitHash = b
	}

	if cfg.GitHubToken == "" {
		if v, ok := lookup("GITHUB_TOKEN"); ok {
			cfg.GitHubToken = v
		}
	}
	if cfg.HTTPSProxy == "" {
		for _, key := range []string{"https_proxy", "HTTPS_PROXY"} {
			if v, ok := lookup(key); ok && v != "" {
				cfg.HTTPSProxy = v
				break
			}
		}
	}
	return nil
}

func parsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%q is not a port number", s)
	}
	return uint16(n), nil
}
