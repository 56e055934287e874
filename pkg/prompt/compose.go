// Package prompt assembles the single model prompt for a request.
// Assembly is deterministic: the same inputs and clock always produce
// the same string, and no input is mutated.
package prompt

import (
	"fmt"
	"strings"
	"time"
)

// Page is fetched page content included in the prompt.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Input carries everything the composer may include. Empty fields are
// omitted from the prompt; Message and Now are always present.
type Input struct {
	Message string
	Now     time.Time

	// Repository documentation (full-fidelity source, rendered first).
	DocsRepository string
	DocsText       string
	CodeResults    string

	// Formatted search snippet block.
	SearchBlock string

	// Fetched page content.
	Pages []Page
}

// HasSources reports whether any external source contributed content.
func (in *Input) HasSources() bool {
	return in.DocsText != "" || in.SearchBlock != "" || len(in.Pages) > 0
}

// Compose builds the model prompt. Ordering is deliberate: repository
// documentation outranks search snippets, which outrank page excerpts
// only in position, not in the instructions (full page content is
// preferred over snippets on contradiction). The user question is
// repeated verbatim at the end to anchor attention after a long
// context block.
func Compose(in Input) string {
	timestamp := in.Now.UTC().Format("Monday, January 2, 2006 15:04 MST")

	if !in.HasSources() {
		var b strings.Builder
		fmt.Fprintf(&b, "Current date and time: %s\n\n", timestamp)
		b.WriteString("You do not have access to live data for this question. ")
		b.WriteString("If the question depends on current or recent information, say so instead of guessing.\n\n")
		b.WriteString(in.Message)
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Current date and time: %s\n\n", timestamp)

	if in.DocsText != "" {
		b.WriteString("=== GITHUB REPOSITORY DOCUMENTATION ===\n")
		fmt.Fprintf(&b, "Repository: %s\n\n", in.DocsRepository)
		b.WriteString(in.DocsText)
		b.WriteString("\n========================================\n\n")
	}
	if in.CodeResults != "" {
		b.WriteString("=== GITHUB CODE SEARCH RESULTS ===\n")
		fmt.Fprintf(&b, "Repository: %s\n\n", in.DocsRepository)
		b.WriteString(in.CodeResults)
		b.WriteString("\n========================================\n\n")
	}
	if in.SearchBlock != "" {
		b.WriteString(in.SearchBlock)
		b.WriteString("\n\n")
	}
	for i, page := range in.Pages {
		fmt.Fprintf(&b, "=== SOURCE %d: %s ===\nURL: %s\n\n%s\n========================================\n\n",
			i+1, page.Title, page.URL, page.Text)
	}

	b.WriteString("Instructions:\n")
	b.WriteString("- Answer using the sources above; cite them by name or domain.\n")
	b.WriteString("- Prefer full page content over search snippets.\n")
	b.WriteString("- When sources contradict, prefer the most recent and most authoritative one.\n")
	b.WriteString("- Be specific with numbers, dates, and names extracted from the sources.\n\n")

	b.WriteString("Question: ")
	b.WriteString(in.Message)
	return b.String()
}
