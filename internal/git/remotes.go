package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Remote is one line of `git remote -v`.
type Remote struct {
	Name string
	URL  string
	Type string // "fetch" or "push"
}

// Remotes lists the configured remotes. Lines have the shape
// "<name>\t<url> (<fetch|push>)"; malformed lines are skipped.
func (c *Client) Remotes(ctx context.Context) ([]Remote, error) {
	out, err := c.output(ctx, "list remotes", "remote", "-v")
	if err != nil {
		return nil, err
	}

	var remotes []Remote
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		remoteType := strings.Trim(fields[2], "()")
		if remoteType != "fetch" && remoteType != "push" {
			continue
		}
		remotes = append(remotes, Remote{Name: fields[0], URL: fields[1], Type: remoteType})
	}
	return remotes, nil
}

// OriginURL returns the fetch URL of the origin remote.
func (c *Client) OriginURL(ctx context.Context) (string, error) {
	remotes, err := c.Remotes(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range remotes {
		if r.Name == "origin" && r.Type == "fetch" {
			return r.URL, nil
		}
	}
	return "", &Error{Msg: "no origin remote found"}
}

// sshURLPattern matches SSH-style remotes: user@host:[group/]name[.git]
var sshURLPattern = regexp.MustCompile(`^[\w.~-]+@[\w.-]+:(.+?)(?:\.git)?/?$`)

// ExtractRepoName extracts the repository name from a remote URL.
// Two shapes are recognized: SSH-style "user@host:group/name.git" and
// http(s) URLs. Anything else is an error. Pure string transform.
func ExtractRepoName(url string) (string, error) {
	var path string

	switch {
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		rest := url[strings.Index(url, "://")+3:]
		rest = strings.TrimSuffix(strings.TrimSuffix(rest, "/"), ".git")
		// Host plus at least one path segment.
		slash := strings.Index(rest, "/")
		if slash < 0 || slash == len(rest)-1 {
			return "", &Error{Msg: fmt.Sprintf("cannot extract repository name from %q", url)}
		}
		path = rest[slash+1:]

	default:
		m := sshURLPattern.FindStringSubmatch(url)
		if m == nil {
			return "", &Error{Msg: fmt.Sprintf("cannot extract repository name from %q", url)}
		}
		path = m[1]
	}

	segments := strings.Split(path, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "", &Error{Msg: fmt.Sprintf("cannot extract repository name from %q", url)}
	}
	return name, nil
}

// Prefix derives the worktree name prefix from the origin remote:
// "<repo-name>-".
func (c *Client) Prefix(ctx context.Context) (string, error) {
	url, err := c.OriginURL(ctx)
	if err != nil {
		return "", err
	}
	name, err := ExtractRepoName(url)
	if err != nil {
		return "", err
	}
	return name + "-", nil
}
