package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Judul\n\nParagraf dengan **tebal**.")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(html, "<h1>Judul</h1>") {
		t.Errorf("expected h1 in output, got %s", html)
	}
	if !strings.Contains(html, "<strong>tebal</strong>") {
		t.Errorf("expected strong in output, got %s", html)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	src := "| Hari | Status |\n| --- | --- |\n| Senin | Diminum |"
	html, err := RenderMarkdown(src)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("expected GFM table support, got %s", html)
	}
}
