package forge

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/raphi011/brws/internal/page"
)

// AzureDevOps renders pages on Azure DevOps Services.
type AzureDevOps struct {
	slug azureSlug
	opts Options
}

func (a *AzureDevOps) Name() string {
	return "Azure DevOps"
}

func (a *AzureDevOps) base() string {
	return fmt.Sprintf("https://dev.azure.com/%s/_git/%s", a.slug.Team(), a.slug.Repo)
}

func (a *AzureDevOps) Render(_ context.Context, pg page.Page) (string, error) {
	base := a.base()
	switch p := pg.(type) {
	case page.Open:
		switch {
		case p.PullRequest:
			return "", &PullReqNotSupportedError{Service: a.Name()}
		case p.Website:
			return "", &AzureDevOpsNotSupportedError{Feature: "website"}
		case a.opts.Branch != "":
			return base + "?version=GB" + url.QueryEscape(a.opts.Branch), nil
		}
		return base, nil
	case page.Diff:
		return "", &AzureDevOpsNotSupportedError{Feature: "diff"}
	case page.Commit:
		return base + "/commit/" + p.Hash, nil
	case page.Tag:
		return base + "?version=GT" + url.QueryEscape(p.Name), nil
	case page.Issue:
		return fmt.Sprintf("https://dev.azure.com/%s/%s/_workitems/edit/%d", a.slug.Organization, a.slug.WorkItemsProject(), p.Number), nil
	case page.FileOrDir:
		if p.Blame {
			return "", &AzureDevOpsNotSupportedError{Feature: "blame"}
		}
		// GC pins a commit, GB a branch; line anchors don't exist.
		version := "GC" + p.Hash
		if p.IsBranch {
			version = "GB" + p.Hash
		}
		return fmt.Sprintf("%s?path=%s&version=%s", base, escapeQueryPath("/"+p.RelativePath), url.QueryEscape(version)), nil
	}
	return base, nil
}

// escapeQueryPath escapes p for a query value while keeping slashes readable.
func escapeQueryPath(p string) string {
	return strings.ReplaceAll(url.QueryEscape(p), "%2F", "/")
}
