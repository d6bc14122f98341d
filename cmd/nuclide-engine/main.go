// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nuclide-engine CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nuclide-engine/internal/xsection"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nuclide-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "nuclide-engine",
	Short: "Closed-form nuclear-physics calculations from the command line",
	Long: `nuclide-engine computes textbook nuclear-physics quantities: liquid-drop
binding energies, bare critical-assembly sizes from one-group diffusion
theory, Gamow alpha-decay estimates, and decay-chain evolution.

The numbers are educational approximations. The cross-section dataset is a
small static table; nuclides absent from it are reported as missing data,
never as failures.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nuclide-engine.yaml or ~/.config/nuclide-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nuclide-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nuclide-engine"))
		}
	}

	viper.SetEnvPrefix("NUCLIDE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadTable builds the cross-section table from the configured dataset
// path, or the embedded default. A load failure produces an empty table
// with a diagnostic; commands that need data report misses per-nuclide.
func loadTable() *xsection.Table {
	table := xsection.Load(viper.GetString("engine.cross_section_path"))
	if table.LoadErr != "" {
		fmt.Fprintln(os.Stderr, "warning:", table.LoadErr)
	}
	return table
}

// resolveNuclide accepts either "Z A" integer arguments or a single
// name like "U-235" resolved through the cross-section table. Input
// validation happens here, at the boundary: the calculation packages
// assume a valid nuclide.
func resolveNuclide(table *xsection.Table, args []string) (types.Nuclide, error) {
	switch len(args) {
	case 1:
		rec, ok := table.FindByName(args[0])
		if !ok {
			return types.Nuclide{}, fmt.Errorf("unknown nuclide %q; use explicit Z and A, or one of: %v", args[0], table.Keys())
		}
		return types.Nuclide{Z: rec.Z, A: rec.A}, nil
	case 2:
		z, err := strconv.Atoi(args[0])
		if err != nil {
			return types.Nuclide{}, fmt.Errorf("atomic number: %w", err)
		}
		a, err := strconv.Atoi(args[1])
		if err != nil {
			return types.Nuclide{}, fmt.Errorf("mass number: %w", err)
		}
		n := types.Nuclide{Z: z, A: a}
		if err := n.Validate(); err != nil {
			return types.Nuclide{}, err
		}
		return n, nil
	default:
		return types.Nuclide{}, fmt.Errorf("expected a nuclide name (\"U-235\") or Z and A")
	}
}

// knowledgeConfig reads knowledge-base settings from viper.
func knowledgeConfig() types.KnowledgeBaseConfig {
	dir := viper.GetString("knowledge_base.knowledge_dir")
	if dir == "" {
		dir = "knowledge"
	}
	return types.KnowledgeBaseConfig{
		KnowledgeDir: dir,
		MaxResults:   viper.GetInt("knowledge_base.max_results"),
	}
}

// printJSON writes v to stdout with stable indentation.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
