package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divinejoshua/tabs-editor-ai-tool/internal/config"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/interpret"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/paraphrase"
	"github.com/divinejoshua/tabs-editor-ai-tool/internal/tone"
)

func rewriteCmd() *cobra.Command {
	var (
		configPath string
		useMock    bool
		toneID     string
		modelID    string
	)

	cmd := &cobra.Command{
		Use:   "rewrite [text...]",
		Short: "Rewrite text once and print the result",
		Long: `Rewrite text in the given tone and print the result.
Text is taken from the arguments, or from stdin when none are given.
The humanize tone prints up to two numbered options.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			reg := buildAdapters(cfg, useMock)
			svc := paraphrase.New(reg.adapters, reg.defaultModel)

			res, err := svc.Rewrite(cmd.Context(), paraphrase.Request{Text: text, Tone: toneID, ModelID: modelID})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&toneID, "tone", string(tone.Formal), "tone to rewrite in (see: paraphrase tones)")
	cmd.Flags().StringVar(&modelID, "model", "", "model ID (default: configured default model)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config.yaml")
	cmd.Flags().BoolVar(&useMock, "mock", false, "use mock adapter instead of real LLM backends")
	return cmd
}

func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printResult(w io.Writer, res interpret.Result) {
	if !res.HasOptions() {
		fmt.Fprintln(w, res.Text)
		return
	}
	for i, opt := range res.Options {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, styleLabel.Render(fmt.Sprintf("Option %d", i+1)))
		fmt.Fprintln(w, opt)
	}
}

func tonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List available tones",
		Run: func(cmd *cobra.Command, args []string) {
			printTones(cmd.OutOrStdout())
		},
	}
}

func printTones(w io.Writer) {
	for _, info := range tone.All() {
		fmt.Fprintln(w, styleHeader.Render(info.ID.String()))
		fmt.Fprintln(w, "  "+styleMuted.Render(info.Directive))
	}
}

