// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nuclide-engine/internal/xsection"
)

var xsectionCmd = &cobra.Command{
	Use:   "xsection",
	Short: "Inspect the neutron cross-section dataset",
}

func init() {
	rootCmd.AddCommand(xsectionCmd)
}

// --- get subcommand ---

var xsectionGetCmd = &cobra.Command{
	Use:   "get [name | Z A]",
	Short: "Show the cross sections for one nuclide",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runXsectionGet,
}

func init() {
	xsectionGetCmd.Flags().String("regime", "", "limit output to one regime: thermal or fast")
	xsectionGetCmd.Flags().Bool("json", false, "emit JSON instead of text")
	xsectionCmd.AddCommand(xsectionGetCmd)
}

func runXsectionGet(cmd *cobra.Command, args []string) error {
	table := loadTable()
	n, err := resolveNuclide(table, args)
	if err != nil {
		return err
	}

	rec, ok := table.Get(n.Z, n.A)
	if !ok {
		return fmt.Errorf("no cross-section data for %s", n)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(rec)
	}

	regimeStr, _ := cmd.Flags().GetString("regime")
	fmt.Printf("%s (Z=%d, A=%d)", rec.Name, rec.Z, rec.A)
	if rec.DensityKgM3 > 0 {
		fmt.Printf("  density %.0f kg/m^3", rec.DensityKgM3)
	}
	fmt.Println()

	regimes := []xsection.Regime{xsection.Thermal, xsection.Fast}
	if regimeStr != "" {
		regime, err := xsection.ParseRegime(regimeStr)
		if err != nil {
			return err
		}
		regimes = []xsection.Regime{regime}
	}
	for _, regime := range regimes {
		cs := rec.Sections(regime)
		fmt.Printf("  %-16s total=%.2f b  scattering=%.2f b  absorption=%.2f b  fission=%.2f b  capture=%.2f b\n",
			regime, cs.TotalB, cs.ScatteringB, cs.AbsorptionB, cs.FissionB, cs.CaptureB)
	}
	if rec.Resonance != nil {
		fmt.Printf("  resonance integral: capture=%.2f b  fission=%.2f b\n",
			rec.Resonance.CaptureB, rec.Resonance.FissionB)
	}
	return nil
}

// --- find subcommand ---

var xsectionFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Look up a nuclide by name",
	Long: `Find resolves a nuclide name against the dataset. Matching ignores
case, hyphens, and spaces, so "U-235", "u235", and "U 235" are the same
query. Partial names match when unambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: runXsectionFind,
}

func init() {
	xsectionCmd.AddCommand(xsectionFindCmd)
}

func runXsectionFind(cmd *cobra.Command, args []string) error {
	table := loadTable()
	rec, ok := table.FindByName(args[0])
	if !ok {
		return fmt.Errorf("no nuclide matching %q in the dataset", args[0])
	}
	fmt.Printf("%s  Z=%d A=%d\n", rec.Name, rec.Z, rec.A)
	return nil
}

// --- list subcommand ---

var xsectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the nuclides in the dataset",
	RunE:  runXsectionList,
}

func init() {
	xsectionCmd.AddCommand(xsectionListCmd)
}

func runXsectionList(cmd *cobra.Command, args []string) error {
	table := loadTable()
	for _, key := range table.Keys() {
		fmt.Println(key)
	}
	fmt.Printf("%d nuclides\n", table.Len())
	return nil
}
