package gitdocs

import "testing"

func TestExtractRepositoryURLPattern(t *testing.T) {
	ref := ExtractRepository("check https://github.com/vercel/next.js for details")
	if ref == nil {
		t.Fatalf("expected a repository ref")
	}
	if ref.Owner != "vercel" || ref.Repo != "next.js" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestExtractRepositoryURLBeatsGenericToken(t *testing.T) {
	// The unrelated word/word token earlier in the message must not win.
	ref := ExtractRepository("roughly 3/4 of users prefer github.com/facebook/react")
	if ref == nil {
		t.Fatalf("expected a repository ref")
	}
	if ref.Owner != "facebook" || ref.Repo != "react" {
		t.Fatalf("expected URL pattern to win, got %+v", ref)
	}
}

func TestExtractRepositoryGenericToken(t *testing.T) {
	ref := ExtractRepository("have a look at golang/go sometime")
	if ref == nil {
		t.Fatalf("expected a repository ref")
	}
	if ref.Owner != "golang" || ref.Repo != "go" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestExtractRepositoryAliasFallback(t *testing.T) {
	ref := ExtractRepository("tell me about react")
	if ref == nil {
		t.Fatalf("expected a repository ref")
	}
	if ref.Owner != "facebook" || ref.Repo != "react" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestExtractRepositoryNoMatch(t *testing.T) {
	if ref := ExtractRepository("what a lovely day"); ref != nil {
		t.Fatalf("expected nil, got %+v", ref)
	}
}
