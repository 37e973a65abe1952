// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
	"github.com/bartekus/commitgate/internal/checks"
	"github.com/bartekus/commitgate/internal/engine"
	"github.com/bartekus/commitgate/internal/gitio"
)

func newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook <commit-msg|pre-commit|pre-merge-commit> [msg-file]",
		Short: "Run as a local git hook against the staged changes",
		Long: `Validate the staged changes synchronously during a git hook.
The first argument names the hook stage; commit-msg additionally receives
the path to the message file, as git passes it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hook, err := parseHookType(args[0])
			if err != nil {
				return err
			}
			if hook == engine.HookCommitMsg && len(args) < 2 {
				return fmt.Errorf("the commit-msg hook requires the message file argument")
			}

			set, err := loadPolicySet()
			if err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}
			repo, err := gitio.Open(wd)
			if err != nil {
				return err
			}

			ec, err := buildHookContext(repo, hook, args)
			if err != nil {
				return err
			}

			report, code := engine.Run(ec, checks.Registry(set))
			engine.WriteReport(cmd.ErrOrStderr(), report)
			if code != engine.ExitOK {
				return clierr.New(code, fmt.Sprintf("%s: %d violation(s)", hook, len(report)))
			}
			return nil
		},
	}
}

func parseHookType(name string) (engine.HookType, error) {
	switch name {
	case "commit-msg":
		return engine.HookCommitMsg, nil
	case "pre-commit":
		return engine.HookPreCommit, nil
	case "pre-merge-commit":
		return engine.HookPreMergeCommit, nil
	}
	return engine.HookNone, fmt.Errorf("unknown hook type %q", name)
}

// buildHookContext materializes the evaluation context from git state. All
// reads happen here; the engine itself never performs I/O.
func buildHookContext(repo *gitio.Repo, hook engine.HookType, args []string) (*engine.Context, error) {
	changes, err := repo.StagedChanges()
	if err != nil {
		return nil, err
	}

	files := make([]engine.FileCandidate, 0, len(changes))
	for _, ch := range changes {
		raw, err := repo.StagedContent(ch.Path)
		if err != nil {
			// Unreadable input is the plumbing's problem, not a policy
			// violation; skip the file and keep validating the rest.
			slog.Warn("skipping unreadable staged file", "path", ch.Path, "err", err)
			continue
		}
		files = append(files, engine.FileCandidate{Path: ch.Path, Raw: raw, NewFile: ch.New})
	}

	manifest, err := repo.BranchManifest()
	if err != nil {
		slog.Debug("branch manifest unavailable", "err", err)
	}

	ec := &engine.Context{
		Files:         files,
		Author:        repo.AuthorIdent(),
		ExistingPaths: manifest,
		Mode:          engine.ModeLocalHook,
		Hook:          hook,
	}

	if hook == engine.HookCommitMsg {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("reading commit message file: %w", err)
		}
		msg := string(data)
		ec.Message = &msg
	}

	slog.Debug("resolved hook context",
		"hook", hook.String(), "files", len(files), "author", ec.Author)
	return ec, nil
}
