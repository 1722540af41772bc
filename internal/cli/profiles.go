// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfilesCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the configuration profiles available to scan --profile",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfiguration(configFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if path != "" {
				fmt.Fprintf(out, "Configuration: %s\n", path)
			} else {
				fmt.Fprintln(out, "Configuration: built-in defaults")
			}
			for _, name := range cfg.ListProfiles() {
				profile := cfg.GetProfile(name)
				fmt.Fprintf(out, "  %-12s %s\n", name, profile.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML configuration file")
	return cmd
}
