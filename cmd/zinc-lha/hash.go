package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	zinclha "github.com/kuhlklay/zinc-lha"
)

func newFileCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "file [flags] PATH [...]",
		DisableFlagsInUseLine: true,
		Short:                 "Print the Zinc-LHA digest of a regular file",
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	profile := zinclha.V2
	c.Flags().Var(profileFlag{&profile}, "profile", "algorithm `profile`")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runFile(cmd, profile, args)
	}
	return c
}

// runFile reads each file whole. The algorithm has no streaming form:
// the table, block and round count all depend on the complete input.
func runFile(cmd *cobra.Command, profile *zinclha.Profile, files []string) error {
	for _, fname := range files {
		data, err := os.ReadFile(fname)
		if err != nil {
			return err
		}
		digest := profile.Sum(data)
		fmt.Fprintln(cmd.OutOrStdout(), digest)
	}
	return nil
}

func newStringCommand() *cobra.Command {
	c := &cobra.Command{
		Use:                   "string [flags] STRING [...]",
		DisableFlagsInUseLine: true,
		Short:                 "Print the Zinc-LHA digest of each argument",
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	profile := zinclha.V2
	c.Flags().Var(profileFlag{&profile}, "profile", "algorithm `profile`")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		for _, s := range args {
			fmt.Fprintln(cmd.OutOrStdout(), profile.Sum([]byte(s)))
		}
		return nil
	}
	return c
}

func newToBaseCommand(use string, repr string, format func(zinclha.Digest) string) *cobra.Command {
	c := &cobra.Command{
		Use:                   use + " [flags] DIGEST [...]",
		DisableFlagsInUseLine: true,
		Short:                 "Convert digest(s) to a " + repr + " representation",
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		for _, s := range args {
			d, err := zinclha.ParseDigest(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format(d))
		}
		return nil
	}
	return c
}

// profileFlag binds a --profile flag to a command's profile selection.
type profileFlag struct {
	profile **zinclha.Profile
}

func (pf profileFlag) String() string {
	return (*pf.profile).String()
}

func (pf profileFlag) Set(s string) error {
	p, err := zinclha.ParseProfile(s)
	if err != nil {
		return err
	}
	*pf.profile = p
	return nil
}

func (pf profileFlag) Type() string {
	return "profile"
}
