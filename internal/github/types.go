package github

// Repo is the repository metadata brws needs.
type Repo struct {
	DefaultBranch string
	// Parent is set when the repository is a fork.
	Parent *Parent
}

// Parent is the upstream repository of a fork.
type Parent struct {
	Owner         string
	Name          string
	DefaultBranch string
}

// SearchedRepo is a repository search hit.
type SearchedRepo struct {
	FullName string
	CloneURL string
}

type ownerResponse struct {
	Login string `json:"login"`
}

type repoResponse struct {
	Name          string        `json:"name"`
	DefaultBranch string        `json:"default_branch"`
	Homepage      *string       `json:"homepage"`
	Owner         ownerResponse `json:"owner"`
	Parent        *struct {
		Name          string        `json:"name"`
		DefaultBranch string        `json:"default_branch"`
		Owner         ownerResponse `json:"owner"`
	} `json:"parent"`
}

type issueSearchResponse struct {
	Items []struct {
		HTMLURL string `json:"html_url"`
	} `json:"items"`
}

type repoSearchResponse struct {
	Items []struct {
		FullName string `json:"full_name"`
		CloneURL string `json:"clone_url"`
	} `json:"items"`
}
