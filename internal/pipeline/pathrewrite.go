package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// urlAttrs lists, per element, the attributes holding a resource location.
var urlAttrs = map[atom.Atom][]string{
	atom.A:      {"href"},
	atom.Img:    {"src"},
	atom.Source: {"src"},
	atom.Video:  {"src", "poster"},
	atom.Audio:  {"src"},
}

// RewriteRelativeURLs turns relative resource paths in a rendered fragment
// into absolute file:// URLs under sourceDir. The page is viewed from the
// temp directory, where the Markdown file's relative images and links would
// no longer resolve.
//
// URLs with a scheme or host, absolute paths, and fragment-only links are
// left alone. When nothing needs rewriting, or sourceDir is empty, the
// fragment is returned byte for byte.
func RewriteRelativeURLs(fragment, sourceDir string) (string, error) {
	if sourceDir == "" || (!strings.Contains(fragment, "src=") && !strings.Contains(fragment, "href=") && !strings.Contains(fragment, "poster=")) {
		return fragment, nil
	}

	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	changed := false
	for _, n := range nodes {
		if rewriteTree(n, absDir) {
			changed = true
		}
	}
	if !changed {
		return fragment, nil
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteTree rewrites n and its descendants, reporting whether anything changed.
func rewriteTree(n *html.Node, dir string) bool {
	changed := false
	if n.Type == html.ElementNode {
		for _, key := range urlAttrs[n.DataAtom] {
			for i := range n.Attr {
				if n.Attr[i].Key != key || n.Attr[i].Namespace != "" {
					continue
				}
				if abs, ok := resolveRelative(n.Attr[i].Val, dir); ok {
					n.Attr[i].Val = abs
					changed = true
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteTree(c, dir) {
			changed = true
		}
	}
	return changed
}

// resolveRelative returns the file:// URL for a relative reference.
func resolveRelative(ref, dir string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}
	if strings.HasPrefix(u.Path, "/") || filepath.IsAbs(u.Path) {
		return "", false
	}

	return pathToFileURL(filepath.Join(dir, filepath.FromSlash(u.Path)), u.RawQuery, u.Fragment), true
}

// pathToFileURL converts an absolute path to a file:// URL.
// Windows drive paths gain the leading slash file URLs require.
func pathToFileURL(absPath, rawQuery, fragment string) string {
	p := filepath.ToSlash(absPath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{
		Scheme:   "file",
		Path:     p,
		RawQuery: rawQuery,
		Fragment: fragment,
	}
	return u.String()
}
