// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/commitgate/internal/checks"
)

func newChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "List the registered checks in report order",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadPolicySet()
			if err != nil {
				return err
			}
			for _, c := range checks.Registry(set) {
				fmt.Fprintln(cmd.OutOrStdout(), c.Name())
			}
			return nil
		},
	}
}
