// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/logging"
	"github.com/bartekus/commitgate/internal/policy"
)

var (
	rootVerbose    bool
	rootPolicyPath string
)

// NewRootCmd constructs the commitgate root command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITGATE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "commitgate",
		Short:         "Commitgate - commit-content validation for git hooks and CI",
		Long:          "Commitgate checks the files touched by a commit and its message against the repository coding standard, as a local git hook or as a CI action.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(cmd.ErrOrStderr(), rootVerbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&rootPolicyPath, "config", "", "path to a YAML policy file overlaying the defaults")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Commitgate",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commitgate version %s\n", version)
		},
	})

	cmd.AddCommand(newHookCmd())
	cmd.AddCommand(newActionCmd())
	cmd.AddCommand(newChecksCmd())

	return cmd
}

// loadPolicySet resolves --config into the compiled policy the checks use.
// A broken policy file is an invocation problem, not a violation; it still
// exits non-zero so the calling hook rejects the commit.
func loadPolicySet() (*policy.Set, error) {
	p, err := policy.Load(rootPolicyPath)
	if err != nil {
		return nil, clierr.Wrap(1, "loading policy", err)
	}
	set, err := p.Compile()
	if err != nil {
		return nil, clierr.Wrap(1, "compiling policy", err)
	}
	return set, nil
}
