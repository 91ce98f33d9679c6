// Copyright (c) 2025 ZenMesh, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate zenmesh configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cfg.JSON())
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a configuration file and report what is wrong with it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checked, err := mesh.ConfigFromFile(args[0])
		if err != nil {
			var boundary *mesh.Error
			if errors.As(err, &boundary) {
				return fmt.Errorf("%s : %s", boundary.Kind, boundary.Message)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid : %d key(s)\n", args[0], len(checked.Keys()))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
