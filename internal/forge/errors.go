package forge

import (
	"errors"
	"fmt"
)

var (
	// ErrGitLabDiffNotSupported is returned for two-dot diffs on GitLab.
	ErrGitLabDiffNotSupported = errors.New("GitLab does not support '..' for comparing diff between commits, please use '...'")
	// ErrBitbucketDiffNotSupported is returned for any diff on Bitbucket.
	ErrBitbucketDiffNotSupported = errors.New("Bitbucket does not support diff between commits (see https://bitbucket.org/site/master/issues/4779/ability-to-diff-between-any-two-commits)")
	// ErrGheTokenRequired is returned when a GitHub Enterprise API call has no token.
	ErrGheTokenRequired = errors.New("GitHub Enterprise requires an API token, please set ghe_token or $GIT_BRWS_GHE_TOKEN")
)

// BrokenURLError is returned when the repository URL can't be parsed or has no host.
type BrokenURLError struct {
	URL string
	Msg string
}

func (e *BrokenURLError) Error() string {
	return fmt.Sprintf("broken URL '%s': %s", e.URL, e.Msg)
}

// NoUserInPathError is returned when a repository URL path has no user segment.
type NoUserInPathError struct {
	Path string
}

func (e *NoUserInPathError) Error() string {
	return fmt.Sprintf("can't detect user name from path %s", e.Path)
}

// NoRepoInPathError is returned when a repository URL path has no repository segment.
type NoRepoInPathError struct {
	Path string
}

func (e *NoRepoInPathError) Error() string {
	return fmt.Sprintf("can't detect repository name from path %s", e.Path)
}

// UnknownHostingServiceError is returned for hosts no provider recognizes.
type UnknownHostingServiceError struct {
	URL string
}

func (e *UnknownHostingServiceError) Error() string {
	return fmt.Sprintf("unknown hosting service for URL %s, set ghe_url_host ($GIT_BRWS_GHE_URL_HOST) or gitlab_url_host ($GIT_BRWS_GITLAB_URL_HOST) for self-hosted services", e.URL)
}

// PullReqNotSupportedError is returned for --pr on services without pull request support.
type PullReqNotSupportedError struct {
	Service string
}

func (e *PullReqNotSupportedError) Error() string {
	return fmt.Sprintf("--pr does not support the service %s", e.Service)
}

// AzureDevOpsNotSupportedError is returned for pages Azure DevOps can't show.
type AzureDevOpsNotSupportedError struct {
	Feature string
}

func (e *AzureDevOpsNotSupportedError) Error() string {
	return fmt.Sprintf("Azure DevOps does not support %s", e.Feature)
}

// NoLocalRepoFoundError is returned when an operation needs a local repository.
type NoLocalRepoFoundError struct {
	Operation string
}

func (e *NoLocalRepoFoundError) Error() string {
	return fmt.Sprintf("local repository was not found, %s needs one to know the branch", e.Operation)
}
