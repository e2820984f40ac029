// ABOUTME: Terminal formatting for Senso CLI output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/senso-ai/senso-mcp/internal/senso"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatSearchResults renders the answer and result list for a search.
func FormatSearchResults(resp *senso.SearchResponse, query string) string {
	var sb strings.Builder

	if resp.Answer != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Answer:"), resp.Answer))
		sb.WriteString(Separator())
	}

	if len(resp.Results) == 0 {
		sb.WriteString(faint(fmt.Sprintf("No results for %q.\n", query)))
		return sb.String()
	}

	for i, r := range resp.Results {
		title := r.Title
		if title == "" {
			title = "Untitled"
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(shortID(r.ContentID)), bold(title)))
		if r.ChunkText != "" {
			sb.WriteString(fmt.Sprintf("         %s\n", snippet(r.ChunkText, 160)))
		}
		if i < len(resp.Results)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// FormatGeneratedContent renders generated markdown for the terminal,
// falling back to the raw text if rendering fails.
func FormatGeneratedContent(text string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// FormatPromptList renders saved prompts one per entry.
func FormatPromptList(prompts []senso.Prompt) string {
	var sb strings.Builder
	for _, p := range prompts {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(shortID(p.PromptID)), bold(p.Name)))
		sb.WriteString(fmt.Sprintf("         %s\n", snippet(p.Text, 100)))
		if p.CreatedAt != "" {
			sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Created:"), faint(p.CreatedAt)))
		}
	}
	return sb.String()
}

// FormatTemplateList renders saved templates one per entry.
func FormatTemplateList(templates []senso.Template) string {
	var sb strings.Builder
	for _, t := range templates {
		sb.WriteString(fmt.Sprintf("  %s  %s %s\n",
			faint(shortID(t.TemplateID)),
			bold(t.Name),
			cyan(fmt.Sprintf("[%s]", t.OutputType))))
		sb.WriteString(fmt.Sprintf("         %s\n", snippet(t.Text, 100)))
	}
	return sb.String()
}

// FormatSources renders the knowledge-base sources used for generation.
func FormatSources(sources []senso.Source) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", bold("Sources:")))
	for _, s := range sources {
		title := s.Title
		if title == "" {
			title = "Untitled"
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(shortID(s.ContentID)), title))
	}
	return sb.String()
}

func shortID(id string) string {
	if id == "" {
		return "--------"
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func snippet(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

// Separator returns a faint horizontal rule.
func Separator() string {
	return faint(strings.Repeat("-", 50)) + "\n"
}

// Success prefixes msg with a green check.
func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

// Error prefixes msg with a red cross.
func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
