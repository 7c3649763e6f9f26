package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "paraphrase",
	Short:         "Rewrite text in a chosen tone using an LLM backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(
		serveCmd(),
		rewriteCmd(),
		tonesCmd(),
	)
}
