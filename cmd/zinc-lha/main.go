package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"zombiezen.com/go/bass/sigterm"

	zinclha "github.com/kuhlklay/zinc-lha"
)

func main() {
	rootCommand := &cobra.Command{
		Use:           "zinc-lha",
		Short:         "Compute Zinc-LHA digests",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCommand.RunE = func(cmd *cobra.Command, args []string) error {
		return runPrompt(cmd)
	}

	rootCommand.AddCommand(
		newFileCommand(),
		newStringCommand(),
		newToBaseCommand("to-base16", "base-16", zinclha.Digest.RawBase16),
		newToBaseCommand("to-base32", "base-32", zinclha.Digest.RawBase32),
		newToBaseCommand("to-base64", "base-64", zinclha.Digest.RawBase64),
		newToBaseCommand("to-sri", "SRI", zinclha.Digest.SRI),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zinc-lha:", err)
		os.Exit(1)
	}
}

// runPrompt is the classic interactive transcript:
// prompt, read one line, print the digest.
func runPrompt(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, "Input: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read input: %w", err)
	}
	digest := zinclha.Sum([]byte(strings.TrimSpace(line)))
	fmt.Fprintf(out, "Zinc-LHA Hash: %s\n", digest)
	return nil
}
