// Package gitdocs resolves GitHub repositories mentioned in chat
// messages and fetches their documentation through the GitMCP API.
package gitdocs

import (
	"regexp"
	"strings"
)

// RepositoryRef identifies a GitHub repository.
type RepositoryRef struct {
	Owner string
	Repo  string
}

func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Repo
}

var (
	githubURLPattern = regexp.MustCompile(`(?i)github\.com/([^/\s]+)/([^/\s?#]+)`)
	// Generic owner/repo token. Known to false-positive on dates and
	// fractions; the cost of a wrong match is one wasted doc lookup.
	ownerRepoPattern = regexp.MustCompile(`(?i)([a-z0-9_-]+)/([a-z0-9_-]+)`)
)

// projectAliases maps well-known project names to their repositories.
// Last-resort resolution, used only when no pattern matched.
var projectAliases = []struct {
	name string
	ref  RepositoryRef
}{
	{"next.js", RepositoryRef{"vercel", "next.js"}},
	{"nextjs", RepositoryRef{"vercel", "next.js"}},
	{"react", RepositoryRef{"facebook", "react"}},
	{"vue", RepositoryRef{"vuejs", "core"}},
	{"tailwind", RepositoryRef{"tailwindlabs", "tailwindcss"}},
	{"tensorflow", RepositoryRef{"tensorflow", "tensorflow"}},
	{"pytorch", RepositoryRef{"pytorch", "pytorch"}},
	{"langchain", RepositoryRef{"langchain-ai", "langchain"}},
	{"langgraph", RepositoryRef{"langchain-ai", "langgraph"}},
	{"playwright", RepositoryRef{"microsoft", "playwright"}},
}

// ExtractRepository resolves a repository reference from a message.
// Precedence: explicit github.com URL, then a generic owner/repo
// token, then the alias table. Returns nil when nothing resolves;
// callers treat nil as "skip documentation lookup".
func ExtractRepository(message string) *RepositoryRef {
	if match := githubURLPattern.FindStringSubmatch(message); match != nil {
		return &RepositoryRef{Owner: match[1], Repo: match[2]}
	}

	if match := ownerRepoPattern.FindStringSubmatch(message); match != nil {
		owner, repo := match[1], match[2]
		if owner != "" && repo != "" {
			return &RepositoryRef{Owner: owner, Repo: repo}
		}
	}

	lower := strings.ToLower(message)
	for _, alias := range projectAliases {
		if strings.Contains(lower, alias.name) {
			ref := alias.ref
			return &ref
		}
	}

	return nil
}
