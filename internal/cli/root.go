// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the schema-audit command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "schema-audit",
		Short: "Inventory tabular and document files and find duplicate schemas",
		Long: `schema-audit walks a directory tree and records, per file, its type,
creation time, a CRC-32 content hash and (for CSV and Excel) the column header
and row count. It then groups files with identical content, identical column
sets and similar column sets.

Ten-digit identifiers are redacted from every name and header before they are
stored.

Exit Codes:
  0 - Success
  1 - Scan or I/O failure
  2 - Invalid arguments, flags or configuration
  3 - Unexpected panic`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is not an error
			_ = godotenv.Load()
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	root.AddCommand(newScanCommand())
	root.AddCommand(newProfilesCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// usageArgs wraps a cobra positional-argument validator so its errors map to
// ExitUsageError.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
