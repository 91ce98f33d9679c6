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
	"time"

	"github.com/spf13/cobra"
	"github.com/zenmesh/zenmesh.go/pkg/mesh"
)

var (
	scoutWhatAmI string
	scoutTimeout time.Duration
)

var scoutCmd = &cobra.Command{
	Use:   "scout",
	Short: "Discover live mesh processes and print their announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		what, err := mesh.ParseWhatAmI(scoutWhatAmI)
		if err != nil {
			return err
		}
		hellos, err := mesh.Scout(what, cfg, scoutTimeout)
		if err != nil {
			return err
		}
		for _, hello := range hellos {
			fmt.Fprintln(cmd.OutOrStdout(), hello)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d announcement(s) in %v\n", len(hellos), scoutTimeout)
		return nil
	},
}

func init() {
	scoutCmd.Flags().StringVarP(&scoutWhatAmI, "whatami", "w", "router|peer", `roles to scout for, e.g. "router|peer"`)
	scoutCmd.Flags().DurationVarP(&scoutTimeout, "timeout", "t", time.Second, "how long to scout")
	rootCmd.AddCommand(scoutCmd)
}
