package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/interpret"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/server"
)

func TestScore(t *testing.T) {
	original := "one two three four five"

	tests := []struct {
		name           string
		tone           string
		res            interpret.Result
		wantShape      string
		wantViolations int
	}{
		{"text result", "concise", interpret.Result{Text: "one two"}, "result", 0},
		{"degraded humanize", "humanize", interpret.Result{Text: "sorry"}, "result", 1},
		{"good options", "humanize", interpret.Result{Options: []string{"a b c d e", "e d c b a"}}, "options", 0},
		{"duplicate options", "humanize", interpret.Result{Options: []string{"a b c d e", "a b c d e"}}, "options", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := score(result{Tone: tt.tone}, original, tt.res)
			if r.Shape != tt.wantShape {
				t.Errorf("shape: got %q, want %q", r.Shape, tt.wantShape)
			}
			if len(r.Violations) != tt.wantViolations {
				t.Errorf("violations: got %q, want %d", r.Violations, tt.wantViolations)
			}
			if len(r.OutWords) != len(r.Output) {
				t.Errorf("out words: got %d entries for %d outputs", len(r.OutWords), len(r.Output))
			}
		})
	}
}

func TestRunAgainstMockServer(t *testing.T) {
	adapters := map[string]adapter.LLMAdapter{"mock": &adapter.MockAdapter{}}
	models := []adapter.ModelInfo{{ID: "mock", Name: "Mock", Provider: "mock"}}
	ts := httptest.NewServer(server.SetupMux(adapters, models, "mock", server.Options{}))
	defer ts.Close()

	jsonPath := filepath.Join(t.TempDir(), "results.json")
	var out bytes.Buffer
	err := run(&out, options{
		url:     ts.URL,
		tones:   []string{"humanize", "formal"},
		runs:    1,
		jsonOut: jsonPath,
	})
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}

	if !strings.Contains(out.String(), "Benchmarking "+ts.URL+" using model mock") {
		t.Errorf("output missing header: %s", out.String())
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if want := len(Samples) * 2; len(rep.Results) != want {
		t.Fatalf("results: got %d, want %d", len(rep.Results), want)
	}
	for _, r := range rep.Results {
		wantShape := "result"
		if r.Tone == "humanize" {
			wantShape = "options"
		}
		if r.Shape != wantShape {
			t.Errorf("%s/%s shape: got %q, want %q", r.Sample, r.Tone, r.Shape, wantShape)
		}
	}
}

func TestRunRejectsUnknownTone(t *testing.T) {
	err := run(&bytes.Buffer{}, options{url: "http://127.0.0.1:1", tones: []string{"sarcastic"}, runs: 1})
	if err == nil || !strings.Contains(err.Error(), "sarcastic") {
		t.Errorf("error: got %v, want unknown tone", err)
	}
}
