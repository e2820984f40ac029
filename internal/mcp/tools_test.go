// ABOUTME: Tests for tool core logic and argument validation.
// ABOUTME: Uses httptest-backed clients; no real network calls.

package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/senso-ai/senso-mcp/internal/senso"
)

func newTestServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := senso.NewClient(senso.Config{APIKey: "tgr_test", BaseURL: srv.URL})
	return NewServer(client)
}

func TestAddContentConfirmation(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"c-42","title":"Notes"}`))
	}))

	out, err := s.addContent(context.Background(), addContentParams{Title: "Notes", Text: "body"})
	if err != nil {
		t.Fatalf("add content failed: %v", err)
	}
	if !strings.Contains(out, "c-42") {
		t.Errorf("confirmation should contain the stored ID, got %q", out)
	}
	if !strings.Contains(out, "Notes") {
		t.Errorf("confirmation should contain the title, got %q", out)
	}
}

func TestSearchContentNoResults(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"answer":"","results":[]}`))
	}))

	out, err := s.searchContent(context.Background(), searchContentParams{Query: "nothing"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "No relevant information found") {
		t.Errorf("expected empty-result message, got %q", out)
	}
}

func TestSearchContentFormatsResults(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"answer": "MCP is a tool protocol.",
			"results": [{"content_id": "c-1", "title": "Intro", "chunk_text": "MCP stands for..."}]
		}`))
	}))

	out, err := s.searchContent(context.Background(), searchContentParams{Query: "MCP"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	for _, want := range []string{"Answer: MCP is a tool protocol.", "Result 1:", "Title: Intro", "ID: c-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateContentRoundTrip(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"A draft about X.","content_id":"c-77"}`))
	}))

	out, err := s.generateContent(context.Background(), generateContentParams{Topic: "X", Save: true})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "A draft about X.") {
		t.Errorf("output should contain generated text, got %q", out)
	}
	if !strings.Contains(out, "c-77") {
		t.Errorf("output should contain stored identifier, got %q", out)
	}
}

func TestGenerateContentOmitsIDWhenNotSaving(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generated_text":"draft","content_id":"c-77"}`))
	}))

	out, err := s.generateContent(context.Background(), generateContentParams{Topic: "X"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if strings.Contains(out, "saved with ID") {
		t.Errorf("unsaved generation should not report a saved ID, got %q", out)
	}
}

func TestCoreMethodsSurfaceAPIErrors(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	ctx := context.Background()

	calls := []struct {
		name string
		run  func() error
	}{
		{"add_content", func() error {
			_, err := s.addContent(ctx, addContentParams{Title: "t", Text: "x"})
			return err
		}},
		{"search_content", func() error {
			_, err := s.searchContent(ctx, searchContentParams{Query: "q"})
			return err
		}},
		{"generate_content", func() error {
			_, err := s.generateContent(ctx, generateContentParams{Topic: "t"})
			return err
		}},
		{"list_prompts", func() error {
			_, err := s.listPrompts(ctx, listParams{})
			return err
		}},
		{"list_templates", func() error {
			_, err := s.listTemplates(ctx, listParams{})
			return err
		}},
	}

	for _, c := range calls {
		t.Run(c.name, func(t *testing.T) {
			err := c.run()
			if err == nil {
				t.Fatal("expected error for 500 response")
			}
			if !strings.Contains(err.Error(), "500") {
				t.Errorf("error should contain the status code, got %q", err.Error())
			}
		})
	}
}

func TestListPromptsEmpty(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	out, err := s.listPrompts(context.Background(), listParams{})
	if err != nil {
		t.Fatalf("list prompts failed: %v", err)
	}
	if out != "No prompts found." {
		t.Errorf("expected empty message, got %q", out)
	}
}

func TestListTemplatesFormats(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"template_id":"t-1","name":"md","text":"# {{title}}","output_type":"text"}]`))
	}))

	out, err := s.listTemplates(context.Background(), listParams{})
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	for _, want := range []string{"t-1", "md", "Output Type: text"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateWithPromptFormats(t *testing.T) {
	s := newTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"generated_text": "The report.",
			"content_id": "c-5",
			"prompt": {"prompt_id": "5f1c2b3a-0000-0000-0000-000000000001", "name": "weekly"},
			"template": {"name": "md", "output_type": "text"},
			"sources": [
				{"content_id": "c-1", "title": "A"}, {"content_id": "c-2", "title": "B"},
				{"content_id": "c-3", "title": "C"}, {"content_id": "c-4", "title": "D"},
				{"content_id": "c-5", "title": "E"}, {"content_id": "c-6", "title": "F"},
				{"content_id": "c-7", "title": "G"}
			]
		}`))
	}))

	out, err := s.generateWithPrompt(context.Background(), generateWithPromptParams{
		PromptID:    "5f1c2b3a-0000-0000-0000-000000000001",
		ContentType: "weekly report",
		Save:        true,
	})
	if err != nil {
		t.Fatalf("generate with prompt failed: %v", err)
	}

	for _, want := range []string{"prompt 'weekly'", "The report.", "template: md (text)", "saved with ID: c-5", "Sources used (7 total)", "and 2 more sources"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParamValidation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"add missing title", (&addContentParams{Text: "x"}).validate(), true},
		{"add missing text", (&addContentParams{Title: "t"}).validate(), true},
		{"add valid", (&addContentParams{Title: "t", Text: "x"}).validate(), false},
		{"search missing query", (&searchContentParams{}).validate(), true},
		{"search negative limit", (&searchContentParams{Query: "q", Limit: -1}).validate(), true},
		{"search valid", (&searchContentParams{Query: "q"}).validate(), false},
		{"generate missing topic", (&generateContentParams{}).validate(), true},
		{"prompt bad uuid", (&updatePromptParams{PromptID: "nope", Name: "n", Text: "t"}).validate(), true},
		{"prompt good uuid", (&updatePromptParams{PromptID: "5f1c2b3a-0000-0000-0000-000000000001", Name: "n", Text: "t"}).validate(), false},
		{"template bad output type", (&createTemplateParams{Name: "n", Text: "t", OutputType: "xml"}).validate(), true},
		{"template default output type", (&createTemplateParams{Name: "n", Text: "t"}).validate(), false},
		{"genprompt bad template uuid", (&generateWithPromptParams{PromptID: "5f1c2b3a-0000-0000-0000-000000000001", ContentType: "c", TemplateID: "nope"}).validate(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Errorf("got err %v, wantErr %v", tt.err, tt.wantErr)
			}
		})
	}
}
