// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/checks"
	"github.com/bartekus/commitgate/internal/engine"
)

func newActionCmd() *cobra.Command {
	var (
		filesArg  string
		newFiles  string
		commitMsg string
		authorArg string
	)

	cmd := &cobra.Command{
		Use:   "action",
		Short: "Run as a CI action against an explicit file list",
		Long: `Validate files named on the command line without touching git state.
File paths are read from disk as given; --new-files picks the new-file
branch of the filename and size rules.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadPolicySet()
			if err != nil {
				return err
			}

			isNew, err := parseBoolFlag(newFiles)
			if err != nil {
				return fmt.Errorf("--new-files: %w", err)
			}

			ec := &engine.Context{
				Mode:   engine.ModeAction,
				Author: authorArg,
			}
			for _, path := range splitFileList(filesArg) {
				raw, err := os.ReadFile(path)
				if err != nil {
					// Defensive skip: a missing file is the caller's
					// input problem, not a policy violation.
					slog.Warn("skipping unreadable file", "path", path, "err", err)
					continue
				}
				ec.Files = append(ec.Files, engine.FileCandidate{
					Path: path, Raw: raw, NewFile: isNew,
				})
			}

			if cmd.Flags().Changed("commit-message") {
				ec.Message = &commitMsg
			}

			report, code := engine.Run(ec, checks.Registry(set))
			engine.WriteReport(cmd.ErrOrStderr(), report)
			if code != engine.ExitOK {
				return clierr.New(code, fmt.Sprintf("action: %d violation(s)", len(report)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filesArg, "files", "", "comma-separated list of file paths to validate")
	cmd.Flags().StringVar(&newFiles, "new-files", "0", "whether the files are new (0 or 1)")
	cmd.Flags().StringVar(&commitMsg, "commit-message", "", "commit message to validate")
	cmd.Flags().StringVar(&authorArg, "author", "", "author ident to validate")

	return cmd
}

func splitFileList(arg string) []string {
	var paths []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func parseBoolFlag(v string) (bool, error) {
	switch v {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}
	return false, fmt.Errorf("expected 0 or 1, got %q", v)
}
