// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate validates the content of a commit before it lands: the files it
touches and its message, against a fixed coding-standard policy. It runs as
a local git hook (commit-msg, pre-commit, pre-merge-commit) or as a CI
action fed an explicit file list.

Copyright (C) 2026  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3
or later. See https://www.gnu.org/licenses/ for license details.
*/

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/commitgate/cmd/commitgate/commands"
	"github.com/bartekus/commitgate/cmd/commitgate/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
