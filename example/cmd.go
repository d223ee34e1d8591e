// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var v *viper.Viper

	runScenarios := func(cmd *cobra.Command, scs ...scenario) error {
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}
		log := cfg.logger(out)
		for _, sc := range scs {
			sc.run(cmd.Context(), log, cfg)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:           "obsdemo",
		Short:         "Run the synchronous observable scenarios",
		Long:          "Run the synchronous observable scenarios. Without a sub-command all scenarios are run.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			v, err = newViper(cmd.Flags())
			return
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, scenarios...)
		},
	}
	registerFlags(rootCmd.PersistentFlags())

	for _, sc := range scenarios {
		sc := sc
		rootCmd.AddCommand(&cobra.Command{
			Use:   sc.name,
			Short: sc.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runScenarios(cmd, sc)
			},
		})
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run all scenarios in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, scenarios...)
		},
	})
	rootCmd.SetOut(out)
	return rootCmd
}
