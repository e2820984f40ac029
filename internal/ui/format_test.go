// ABOUTME: Tests for terminal output formatting.
// ABOUTME: Validates search, prompt, and template rendering.

package ui

import (
	"strings"
	"testing"

	"github.com/senso-ai/senso-mcp/internal/senso"
)

func TestFormatSearchResults(t *testing.T) {
	resp := &senso.SearchResponse{
		Answer: "Short answer.",
		Results: []senso.SearchResult{
			{ContentID: "abcdef123456", Title: "First", ChunkText: "Some chunk text here."},
			{ContentID: "fedcba654321", Title: "", ChunkText: ""},
		},
	}

	out := FormatSearchResults(resp, "query")
	if !strings.Contains(out, "Short answer.") {
		t.Errorf("output missing answer: %q", out)
	}
	if !strings.Contains(out, "abcdef12") {
		t.Errorf("output missing shortened ID: %q", out)
	}
	if !strings.Contains(out, "First") {
		t.Errorf("output missing title: %q", out)
	}
	if !strings.Contains(out, "Untitled") {
		t.Errorf("missing title should render as Untitled: %q", out)
	}
}

func TestFormatSearchResultsEmpty(t *testing.T) {
	out := FormatSearchResults(&senso.SearchResponse{}, "nothing")
	if !strings.Contains(out, "No results") {
		t.Errorf("expected empty-result message, got %q", out)
	}
	if !strings.Contains(out, "nothing") {
		t.Errorf("empty-result message should echo the query, got %q", out)
	}
}

func TestFormatGeneratedContentFallback(t *testing.T) {
	// Renderer output varies by terminal; the raw text must survive either way.
	out := FormatGeneratedContent("plain text content")
	if !strings.Contains(out, "plain text content") {
		t.Errorf("generated text lost in rendering: %q", out)
	}
}

func TestFormatPromptList(t *testing.T) {
	prompts := []senso.Prompt{
		{PromptID: "11112222-3333-4444-5555-666677778888", Name: "weekly", Text: "Write the weekly report for {{week}}", CreatedAt: "2026-01-01"},
	}

	out := FormatPromptList(prompts)
	if !strings.Contains(out, "weekly") {
		t.Errorf("output missing prompt name: %q", out)
	}
	if !strings.Contains(out, "2026-01-01") {
		t.Errorf("output missing created date: %q", out)
	}
}

func TestFormatTemplateList(t *testing.T) {
	templates := []senso.Template{
		{TemplateID: "t-1", Name: "markdown", Text: "# {{title}}", OutputType: "text"},
	}

	out := FormatTemplateList(templates)
	if !strings.Contains(out, "markdown") || !strings.Contains(out, "[text]") {
		t.Errorf("output missing template fields: %q", out)
	}
}

func TestSnippet(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := snippet(long, 50)
	if len(got) != 53 { // 50 chars + "..."
		t.Errorf("expected truncated snippet of 53 chars, got %d", len(got))
	}

	if got := snippet("short", 50); got != "short" {
		t.Errorf("short text should pass through, got %q", got)
	}

	if got := snippet("a\n b\t\tc", 50); got != "a b c" {
		t.Errorf("whitespace should collapse, got %q", got)
	}
}
