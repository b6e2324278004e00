// Package browse computes the URL of a [resolve.Request] and delivers it:
// opened in a browser, printed, or copied to the clipboard.
//
// [URL] runs the whole pipeline: the arguments are parsed into a
// [page.Page], the repository URL is routed to a [forge.Forge], and the
// forge renders the page. [Deliver] then decides what to do with it.
package browse
