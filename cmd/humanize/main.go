package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/adeqmish/ai-text-humanizer/internal/client"
	"github.com/adeqmish/ai-text-humanizer/internal/initiator"
	"github.com/adeqmish/ai-text-humanizer/internal/tui"
)

const defaultURL = "http://localhost:8090"

var errNoInput = errors.New("no text given: pass it as arguments or on stdin")

type options struct {
	url       string
	accessKey string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "humanize [text...]",
		Short: initiator.AppName + " client",
		Long: initiator.AppTagline + `

With arguments, the joined arguments are humanized and printed.
Without arguments, the text is read from stdin.
Use "humanize tui" for the interactive interface.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.url, "url", envOr("HUMANIZER_URL", defaultURL), "humanizer server base URL")
	rootCmd.PersistentFlags().StringVar(&opts.accessKey, "access-key", os.Getenv("HUMANIZER_ACCESS_KEY"), "access key sent as X-API-Key")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := initiator.New(client.New(opts.url, opts.accessKey))
			return tui.Run(in)
		},
	}
	rootCmd.AddCommand(tuiCmd)

	return rootCmd
}

func runOnce(cmd *cobra.Command, opts *options, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), errNoInput)
		return errNoInput
	}

	in := initiator.New(client.New(opts.url, opts.accessKey))
	in.Submit(cmd.Context(), text)

	s := in.State()
	if s.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+s.Error)
		fmt.Fprintln(cmd.ErrOrStderr(), initiator.ConfigHint)
		return errors.New(s.Error)
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.Output)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
