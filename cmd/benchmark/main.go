package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/adapter"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/interpret"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/prompt"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

type paraphraseRequest struct {
	Text    string `json:"text"`
	Tone    string `json:"tone"`
	ModelID string `json:"model_id,omitempty"`
}

type result struct {
	Sample     string   `json:"sample"`
	Tone       string   `json:"tone"`
	Words      int      `json:"words"`
	Run        int      `json:"run"`
	WallMs     int64    `json:"wall_ms"`
	Shape      string   `json:"shape,omitempty"`
	OutWords   []int    `json:"out_words,omitempty"`
	Violations []string `json:"violations,omitempty"`
	Output     []string `json:"output,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type options struct {
	url     string
	apiKey  string
	model   string
	tones   []string
	runs    int
	quality bool
	jsonOut string
}

func main() {
	var opts options

	cmd := &cobra.Command{
		Use:          "benchmark",
		Short:        "Measure rewrite latency and humanize constraint adherence against a running server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.url, "url", "http://localhost:8090", "API base URL")
	f.StringVar(&opts.apiKey, "api-key", "", "API key (optional)")
	f.StringVar(&opts.model, "model", "", "model ID to use (default: first listed)")
	f.StringSliceVar(&opts.tones, "tones", []string{string(tone.Humanize), string(tone.Concise)}, "tones to benchmark")
	f.IntVar(&opts.runs, "runs", 3, "number of runs per sample and tone")
	f.BoolVar(&opts.quality, "quality", false, "print every output (1 run)")
	f.StringVar(&opts.jsonOut, "json", "", "write results to a JSON file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	for _, id := range opts.tones {
		if _, ok := tone.Parse(id); !ok {
			return fmt.Errorf("unknown tone %q", id)
		}
	}
	if opts.quality {
		opts.runs = 1
	}

	c := &client{
		http:    &http.Client{Timeout: 180 * time.Second},
		baseURL: strings.TrimRight(opts.url, "/"),
		apiKey:  opts.apiKey,
	}

	modelID := opts.model
	if modelID == "" {
		var err error
		if modelID, err = c.firstModel(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "Benchmarking %s using model %s (%d runs, tones: %s)\n", c.baseURL, modelID, opts.runs, strings.Join(opts.tones, ","))

	var results []result
	failures := 0
	for _, sample := range Samples {
		for _, id := range opts.tones {
			for i := 1; i <= opts.runs; i++ {
				r := c.rewrite(sample, id, modelID, i)
				results = append(results, r)
				if r.Error != "" {
					failures++
					fmt.Fprintf(w, "  %s/%s run %d: FAILED (%s)\n", sample.Name, id, i, r.Error)
					continue
				}
				fmt.Fprintf(w, "  %s/%s run %d: %dms\n", sample.Name, id, i, r.WallMs)
				if opts.quality {
					printOutput(w, r)
				}
			}
		}
	}

	fmt.Fprintln(w)
	printTable(w, results)
	printSummary(w, results)

	if opts.jsonOut != "" {
		if err := writeReport(opts.jsonOut, results, c.baseURL, modelID); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(w, "\nResults written to %s\n", opts.jsonOut)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d runs failed", failures, len(results))
	}
	return nil
}

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func (c *client) do(method, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	return c.http.Do(req)
}

func (c *client) firstModel() (string, error) {
	resp, err := c.do(http.MethodGet, "/api/models", nil)
	if err != nil {
		return "", fmt.Errorf("fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("models endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var models []adapter.ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&models); err != nil {
		return "", fmt.Errorf("decode models: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models available")
	}
	return models[0].ID, nil
}

func (c *client) rewrite(sample Sample, toneID, modelID string, run int) result {
	r := result{Sample: sample.Name, Tone: toneID, Words: prompt.WordCount(sample.Text), Run: run}

	payload, _ := json.Marshal(paraphraseRequest{Text: sample.Text, Tone: toneID, ModelID: modelID})

	start := time.Now()
	resp, err := c.do(http.MethodPost, "/api/paraphrase", payload)
	r.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return r
	}

	var res interpret.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		r.Error = err.Error()
		return r
	}
	return score(r, sample.Text, res)
}

// score fills in output shape, word counts, and humanize violations.
func score(r result, original string, res interpret.Result) result {
	if !res.HasOptions() {
		r.Shape = "result"
		r.Output = []string{res.Text}
		r.OutWords = []int{prompt.WordCount(res.Text)}
		if r.Tone == string(tone.Humanize) {
			r.Violations = []string{"degraded: no options array"}
		}
		return r
	}

	r.Shape = "options"
	r.Output = res.Options
	for _, opt := range res.Options {
		r.OutWords = append(r.OutWords, prompt.WordCount(opt))
	}
	for _, v := range interpret.Check(res.Options, original) {
		r.Violations = append(r.Violations, v.String())
	}
	return r
}

func printOutput(w io.Writer, r result) {
	for i, out := range r.Output {
		fmt.Fprintf(w, "    OUT %d (%d words): %s\n", i+1, r.OutWords[i], out)
	}
	for _, v := range r.Violations {
		fmt.Fprintf(w, "    VIOLATION: %s\n", v)
	}
}

func printTable(w io.Writer, results []result) {
	fmt.Fprintln(w, "| Sample | Tone | Words | Run | Wall (ms) | Shape | Out words | Violations |")
	fmt.Fprintln(w, "|--------|------|-------|-----|-----------|-------|-----------|------------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "| %-6s | %-8s | %5d | %d | %9s | %-7s | %9s | %10s |\n",
				r.Sample, r.Tone, r.Words, r.Run, "FAIL", "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "| %-6s | %-8s | %5d | %d | %9d | %-7s | %9s | %10d |\n",
			r.Sample, r.Tone, r.Words, r.Run, r.WallMs, r.Shape, joinInts(r.OutWords), len(r.Violations))
	}
}

func printSummary(w io.Writer, results []result) {
	type agg struct {
		runs, failed, violating int
		totalMs                 int64
	}
	byTone := make(map[string]*agg)
	var order []string
	for _, r := range results {
		a, ok := byTone[r.Tone]
		if !ok {
			a = &agg{}
			byTone[r.Tone] = a
			order = append(order, r.Tone)
		}
		a.runs++
		if r.Error != "" {
			a.failed++
			continue
		}
		a.totalMs += r.WallMs
		if len(r.Violations) > 0 {
			a.violating++
		}
	}

	fmt.Fprintf(w, "\nSummary:\n")
	for _, id := range order {
		a := byTone[id]
		ok := a.runs - a.failed
		avg := int64(0)
		if ok > 0 {
			avg = a.totalMs / int64(ok)
		}
		fmt.Fprintf(w, "- %s: %d runs (%d ok, %d failed), avg %dms, %d with violations\n",
			id, a.runs, ok, a.failed, avg, a.violating)
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "/")
}

type report struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeReport(path string, results []result, baseURL, modelID string) error {
	data, err := json.MarshalIndent(report{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Model:     modelID,
		Results:   results,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
