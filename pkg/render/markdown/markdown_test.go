package markdown_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-patterns/pkg/render/markdown"
)

func TestRenderer_Document(t *testing.T) {
	var buf bytes.Buffer
	r, err := markdown.New(&buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := r.Header("<Notes>"); err != nil {
		t.Fatalf("header: %v", err)
	}
	if err := r.Paragraph("Some **bold** text."); err != nil {
		t.Fatalf("paragraph: %v", err)
	}
	if err := r.Paragraph("A [link](https://example.com)."); err != nil {
		t.Fatalf("paragraph: %v", err)
	}
	if err := r.Footer(); err != nil {
		t.Fatalf("footer: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>&lt;Notes&gt;</title>",
		"<h1>&lt;Notes&gt;</h1>",
		"<p>Some <strong>bold</strong> text.</p>",
		`<a href="https://example.com">link</a>`,
		"</body></html>\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<Notes>") {
		t.Fatalf("title must be escaped:\n%s", out)
	}
}

func TestNew_RequiresWriter(t *testing.T) {
	if _, err := markdown.New(nil); err == nil {
		t.Fatal("expected nil writer to fail")
	}
}
