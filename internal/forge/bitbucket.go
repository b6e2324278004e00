package forge

import (
	"context"
	"fmt"

	"github.com/raphi011/brws/internal/page"
)

// Bitbucket renders pages on Bitbucket Cloud.
type Bitbucket struct {
	repoRef
	opts Options
}

func (b *Bitbucket) Name() string {
	return "Bitbucket"
}

func (b *Bitbucket) Render(ctx context.Context, pg page.Page) (string, error) {
	base := b.base()
	switch p := pg.(type) {
	case page.Open:
		switch {
		case p.PullRequest:
			return "", &PullReqNotSupportedError{Service: b.Name()}
		case p.Website:
			// https://support.atlassian.com/bitbucket-cloud/docs/publishing-a-website-on-bitbucket-cloud/
			withRepo := fmt.Sprintf("https://%s.bitbucket.io/%s", b.user, b.repo)
			userSite := fmt.Sprintf("https://%s.bitbucket.io", b.user)
			return b.opts.prober().FirstAvailable(ctx, []string{withRepo}, userSite), nil
		case b.branch != "":
			return base + "/branch/" + b.branch, nil
		}
		return base, nil
	case page.Diff:
		return "", ErrBitbucketDiffNotSupported
	case page.Commit:
		return base + "/commits/" + p.Hash, nil
	case page.Tag:
		// no tag view; show the tagged commit
		return base + "/commits/" + p.Commit, nil
	case page.Issue:
		return fmt.Sprintf("%s/issues/%d", base, p.Number), nil
	case page.FileOrDir:
		kind := "src"
		if p.Blame {
			kind = "annotate"
		}
		u := joinPath(base, kind, p.Hash, p.RelativePath)
		if l := p.Line; l != nil && !p.IsDir {
			if l.IsRange {
				u += fmt.Sprintf("#lines-%d:%d", l.Start, l.End)
			} else {
				u += fmt.Sprintf("#lines-%d", l.Start)
			}
		}
		return u, nil
	}
	return base, nil
}
