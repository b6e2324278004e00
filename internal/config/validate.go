package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks host and proxy values.
func (c *Config) Validate() error {
	if err := validateHost(c.GHEURLHost, "ghe_url_host"); err != nil {
		return err
	}
	if err := validateHost(c.GitLabURLHost, "gitlab_url_host"); err != nil {
		return err
	}
	if c.HTTPSProxy != "" {
		if _, err := url.Parse(c.HTTPSProxy); err != nil {
			return fmt.Errorf("invalid https_proxy %q: %w", c.HTTPSProxy, err)
		}
	}
	return nil
}

// validateHost rejects values that are URLs or host:port pairs instead of bare hosts.
func validateHost(host, field string) error {
	if host == "" {
		return nil
	}
	if strings.Contains(host, "://") || strings.ContainsAny(host, "/:@ ") {
		return fmt.Errorf("invalid %s %q: must be a bare host name like \"code.example.com\"", field, host)
	}
	return nil
}
