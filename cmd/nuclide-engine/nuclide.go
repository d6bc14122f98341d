// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nuclide-engine/internal/knowledge"
	"github.com/pdiddy/nuclide-engine/internal/semf"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

var nuclideCmd = &cobra.Command{
	Use:   "nuclide [name | Z A]",
	Short: "Compute binding energy, shell structure, and decay estimates for a nuclide",
	Long: `Nuclide evaluates the semi-empirical mass formula, shell-model
classification, and the liquid-drop fragmentation estimate for one nuclide.

With --alpha-energy the Gamow tunneling estimate for alpha emission is
included; with --excitation an isomer half-life band. --record caches the
result in the knowledge base.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNuclide,
}

func init() {
	nuclideCmd.Flags().Float64("alpha-energy", 0, "alpha particle energy in MeV for the Gamow estimate")
	nuclideCmd.Flags().Float64("excitation", 0, "excitation energy in MeV for the isomer estimate")
	nuclideCmd.Flags().Bool("json", false, "emit JSON instead of text")
	nuclideCmd.Flags().Bool("record", false, "cache the result in the knowledge base")
	rootCmd.AddCommand(nuclideCmd)
}

// nuclideReport is the combined output of the nuclide subcommand.
type nuclideReport struct {
	types.NuclearProperties
	AlphaDecay *types.AlphaDecay `json:"alpha_decay,omitempty" yaml:"alpha_decay,omitempty"`
	Isomer     *types.Isomer     `json:"isomer,omitempty" yaml:"isomer,omitempty"`
}

func runNuclide(cmd *cobra.Command, args []string) error {
	table := loadTable()
	n, err := resolveNuclide(table, args)
	if err != nil {
		return err
	}

	report := nuclideReport{NuclearProperties: semf.Properties(n)}

	if eAlpha, _ := cmd.Flags().GetFloat64("alpha-energy"); eAlpha != 0 {
		if eAlpha < 0 {
			return fmt.Errorf("alpha energy must be positive, got %g MeV", eAlpha)
		}
		if n.Z <= 2 {
			return fmt.Errorf("%s cannot emit an alpha particle", n)
		}
		alpha := semf.AlphaDecay(n, eAlpha)
		report.AlphaDecay = &alpha
	}

	if exc, _ := cmd.Flags().GetFloat64("excitation"); exc != 0 {
		if exc < 0 {
			return fmt.Errorf("excitation energy must be positive, got %g MeV", exc)
		}
		iso := semf.Isomer(n, exc)
		report.Isomer = &iso
	}

	if record, _ := cmd.Flags().GetBool("record"); record {
		if err := recordNuclideReport(cmd.Context(), n, report); err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(report)
	}
	printNuclideReport(report)
	return nil
}

func recordNuclideReport(ctx context.Context, n types.Nuclide, report nuclideReport) error {
	store, err := knowledge.NewStore(knowledgeConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	id := fmt.Sprintf("calc-properties-%s", strings.ToLower(n.String()))
	tags := []string{"binding-energy", "shell-model"}
	if report.AlphaDecay != nil {
		tags = append(tags, "alpha-decay")
	}
	// Liquid-drop and Gamow figures are approximations; record them
	// below full confidence.
	return store.RecordCalculation(ctx, n, id, report, 0.7, tags)
}

func printNuclideReport(r nuclideReport) {
	b := r.Binding
	fmt.Printf("%s  (Z=%d, A=%d, N=%d)\n", b.Nuclide, b.Nuclide.Z, b.Nuclide.A, b.Nuclide.N())
	fmt.Printf("  binding energy      %12.3f MeV  (%.4f MeV/nucleon)\n", b.TotalMeV, b.PerNucleonMeV)
	fmt.Printf("  mass defect         %12.6f u\n", b.MassDefectU)
	fmt.Printf("  terms: volume %.1f, surface %.1f, coulomb %.1f, asymmetry %.1f, pairing %.2f\n",
		b.Terms.Volume, b.Terms.Surface, b.Terms.Coulomb, b.Terms.Asymmetry, b.Terms.Pairing)
	fmt.Printf("  symmetric fission Q %12.3f MeV (placeholder estimate)\n", r.FissionQMeV)

	s := r.Shell
	fmt.Printf("  shell: proton magic=%v, neutron magic=%v, doubly magic=%v\n",
		s.ProtonMagic, s.NeutronMagic, s.DoublyMagic)

	f := r.Fragmentation
	fmt.Printf("  fission barrier     %12.3f MeV (fragments A=%.0f/%.0f)\n",
		f.FissionBarrierMeV, f.LightFragmentA, f.HeavyFragmentA)

	if r.AlphaDecay != nil {
		a := r.AlphaDecay
		fmt.Printf("  alpha decay at %.2f MeV: barrier %.1f MeV, tunneling %.3e, half-life %.3e yr\n",
			a.AlphaEnergyMeV, a.CoulombBarrierMeV, a.TunnelingProbability, a.HalfLifeYears)
	}
	if r.Isomer != nil {
		fmt.Printf("  isomer at %.2f MeV: %s, half-life %.3e s\n",
			r.Isomer.ExcitationMeV, r.Isomer.Kind, r.Isomer.HalfLifeSeconds)
	}
}

// --- stellar subcommand ---

var stellarCmd = &cobra.Command{
	Use:       "stellar [cno|triple-alpha]",
	Short:     "Print stellar burning-chain reference tables",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"cno", "triple-alpha"},
	RunE:      runStellar,
}

func init() {
	stellarCmd.Flags().Bool("json", false, "emit JSON instead of text")
	rootCmd.AddCommand(stellarCmd)
}

func runStellar(cmd *cobra.Command, args []string) error {
	var proc types.StellarProcess
	switch args[0] {
	case "cno":
		proc = semf.CNOCycle()
	case "triple-alpha":
		proc = semf.TripleAlpha()
	default:
		return fmt.Errorf("unknown process %q: want cno or triple-alpha", args[0])
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(proc)
	}

	fmt.Printf("%s  (net: %s)\n", proc.Name, proc.NetReaction)
	for _, r := range proc.Reactions {
		fmt.Printf("  %-28s Q = %+.3f MeV\n", r.Reaction, r.QMeV)
	}
	fmt.Printf("  total Q = %.3f MeV\n", proc.TotalQMeV)
	return nil
}
