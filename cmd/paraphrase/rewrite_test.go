package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/interpret"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"args joined", []string{"hello", "world"}, "ignored", "hello world"},
		{"stdin", nil, "from\n\nstdin", "from\n\nstdin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readText(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readText: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintResult(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, interpret.Result{Text: "Done."})
		if buf.String() != "Done.\n" {
			t.Errorf("got %q, want %q", buf.String(), "Done.\n")
		}
	})

	t.Run("options", func(t *testing.T) {
		var buf bytes.Buffer
		printResult(&buf, interpret.Result{Options: []string{"first", "second"}})
		out := buf.String()
		for _, want := range []string{"Option 1", "first", "Option 2", "second"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q: %q", want, out)
			}
		}
		if strings.Index(out, "first") > strings.Index(out, "second") {
			t.Errorf("options out of order: %q", out)
		}
	})
}

func TestRewriteCommandMock(t *testing.T) {
	t.Setenv("PARAPHRASE_DEFAULT_MODEL", "")

	cmd := rewriteCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--mock", "--tone", "concise", "hello", "there"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := out.String(); got != "Hello there\n" {
		t.Errorf("got %q, want %q", got, "Hello there\n")
	}
}

func TestRewriteCommandInvalidTone(t *testing.T) {
	cmd := rewriteCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--mock", "--tone", "sarcastic", "hello"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for unknown tone, got nil")
	}
	if err.Error() != "Invalid tone selected." {
		t.Errorf("error: got %q, want %q", err.Error(), "Invalid tone selected.")
	}
}

func TestPrintTones(t *testing.T) {
	var buf bytes.Buffer
	printTones(&buf)
	out := buf.String()
	for _, id := range []string{"humanize", "formal", "informal", "concise", "creative", "academic"} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing tone %q", id)
		}
	}
}
