package config

// MergeLocal applies per-repo overrides to global, returning a new Config
// without mutating global. Returns global unchanged if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	if local == nil {
		return global
	}

	merged := global
	if local.GHEURLHost != "" {
		merged.GHEURLHost = local.GHEURLHost
	}
	if local.GHESSHPort != nil {
		merged.GHESSHPort = *local.GHESSHPort
	}
	if local.GitLabURLHost != "" {
		merged.GitLabURLHost = local.GitLabURLHost
	}
	if local.GitLabSSHPort != nil {
		merged.GitLabSSHPort = *local.GitLabSSHPort
	}
	if local.ShortCommitHash != nil {
		merged.ShortCommitHash = *local.ShortCommitHash
	}
	return merged
}
