// Package relevance decides which external sources are worth consulting
// for a given chat message. All predicates are pure string heuristics:
// a wrong trigger costs one wasted API call, never a wrong answer, so
// the matching is deliberately liberal.
package relevance

import "strings"

// searchTriggers mark queries that likely need live web data.
var searchTriggers = []string{
	// Time and date
	"time", "date", "when", "today", "yesterday", "tomorrow",
	"now", "currently", "right now", "this moment",

	// Weather and location
	"weather", "temperature", "forecast", "rain", "snow", "sunny",
	"climate", "hot", "cold", "humid",

	// Current events and news
	"news", "latest", "recent", "current", "breaking", "happening",
	"update", "updates", "development", "developments",

	// Real-time information
	"stock", "price", "market", "crypto", "bitcoin", "exchange rate",
	"score", "game", "match", "sports",

	// Location and travel
	"in ", " at ", "where", "location", "address", "directions",
	"city", "country", "state", "province",

	// People and organizations (might have updates)
	"who is", "ceo", "president", "leader", "founder",
	"company", "organization",

	// Search-related keywords
	"search", "find", "look up", "tell me about", "information about",

	// Years (likely asking about current info)
	"2024", "2025", "2026",

	// Question shapes that often need current data
	"what is the", "what are the", "how much", "how many",
}

// searchSuppressors mark creative/coding/general-knowledge tasks where
// live web data is irrelevant. A suppressor match always wins.
var searchSuppressors = []string{
	"write", "create", "generate", "make", "compose", "draft",
	"explain", "help me understand", "teach me", "how does",
	"calculate", "solve", "compute",
	"translate", "convert to",
	"poem", "story", "essay", "letter",
	"code", "debug", "programming", "function", "algorithm",
	"summarize", "summary of",
}

var questionOpeners = []string{
	"what", "who", "where", "when", "why", "how much", "how many",
}

// docsTriggers mark queries about repositories or well-known projects.
var docsTriggers = []string{
	// Direct repository mentions
	"github", "repository", "repo", "open source", "source code",

	// Library/framework related
	"how does", "how to use", "implementation", "example",
	"documentation", "docs",

	// Specific frameworks/libraries (common ones)
	"react", "next.js", "nextjs", "vue", "angular", "typescript",
	"tailwind", "node.js", "express", "django", "flask", "spring",
	"laravel", "rails", "tensorflow", "pytorch", "langchain",
	"langgraph", "openai", "playwright", "puppeteer",
}

// ShouldSearch reports whether the message warrants a web search.
// Suppressors dominate triggers; question-shaped messages default to
// searching unless suppressed.
func ShouldSearch(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range searchSuppressors {
		if strings.HasPrefix(lower, keyword) || strings.Contains(lower, " "+keyword+" ") {
			return false
		}
	}

	for _, trigger := range searchTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}

	return isQuestion(lower)
}

// ShouldUseDocs reports whether the message warrants a repository
// documentation lookup.
func ShouldUseDocs(message string) bool {
	lower := strings.ToLower(message)
	for _, trigger := range docsTriggers {
		if strings.Contains(lower, trigger) {
			return true
		}
	}
	return false
}

func isQuestion(lower string) bool {
	if strings.Contains(lower, "?") {
		return true
	}
	for _, opener := range questionOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}
