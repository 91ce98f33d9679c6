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
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/zenmesh/zenmesh.go/pkg/config"
	"github.com/zenmesh/zenmesh.go/pkg/logging"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
	"github.com/zenmesh/zenmesh.go/pkg/mesh/natsrt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// global flags
	cfgFile   string
	logLevel  string
	endpoints []string

	// shared state set during PersistentPreRunE
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "zenmesh",
	Short:         "zenmesh CLI - scout for peers and manage configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(logLevel)
		var err error
		if cfg, err = loadConfig(); err != nil {
			return err
		}
		mesh.UseRuntime(natsrt.NewRuntime(nil))
		return nil
	},
}

// loadConfig builds the effective configuration from --config and --endpoint.
func loadConfig() (*config.Config, error) {
	c := config.Default()
	if cfgFile != "" {
		var err error
		if c, err = mesh.ConfigFromFile(cfgFile); err != nil {
			return nil, err
		}
	}
	if len(endpoints) > 0 {
		encoded, err := json.Marshal(endpoints)
		if err != nil {
			return nil, err
		}
		if !c.Insert("connect.endpoints", string(encoded)) {
			return nil, mesh.NewError(mesh.ValidationError, fmt.Sprintf("invalid endpoints : %v", endpoints))
		}
	}
	return c, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file (JSON5 or key=value properties)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error), defaults to $"+logging.EnvLogLevel)
	rootCmd.PersistentFlags().StringArrayVarP(&endpoints, "endpoint", "e", nil, "endpoint to connect to, repeatable")
}
