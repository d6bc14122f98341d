// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nuclide-engine/internal/critmass"
	"github.com/pdiddy/nuclide-engine/internal/knowledge"
	"github.com/pdiddy/nuclide-engine/pkg/types"
)

var criticalCmd = &cobra.Command{
	Use:   "critical [name | Z A]",
	Short: "Compute the bare critical size from one-group diffusion theory",
	Long: `Critical derives the critical radius, volume, and mass of a bare
assembly from the four-factor formula and one-group diffusion theory.

Non-fissile nuclides and nuclides missing from the cross-section dataset
come back with a tagged status rather than an error. The output includes
the diffusion-theory intermediates and order-of-magnitude energy figures.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCritical,
}

func init() {
	criticalCmd.Flags().Float64("density", 0, "material density in kg/m^3 (default: dataset value)")
	criticalCmd.Flags().String("geometry", "sphere", "assembly geometry: sphere, cylinder, or slab")
	criticalCmd.Flags().Bool("reflector", false, "apply the ideal-reflector reduction")
	criticalCmd.Flags().Bool("json", false, "emit JSON instead of text")
	criticalCmd.Flags().Bool("record", false, "cache the result in the knowledge base")
	rootCmd.AddCommand(criticalCmd)
}

func runCritical(cmd *cobra.Command, args []string) error {
	table := loadTable()
	n, err := resolveNuclide(table, args)
	if err != nil {
		return err
	}

	density, _ := cmd.Flags().GetFloat64("density")
	if density < 0 {
		return fmt.Errorf("density must be non-negative, got %g kg/m^3", density)
	}
	geomStr, _ := cmd.Flags().GetString("geometry")
	geom, err := types.ParseGeometry(geomStr)
	if err != nil {
		return err
	}
	reflector, _ := cmd.Flags().GetBool("reflector")

	result := critmass.Calculate(table, n, critmass.Request{
		DensityKgM3: density,
		Geometry:    geom,
		Reflector:   reflector,
	})

	if record, _ := cmd.Flags().GetBool("record"); record && result.Status == types.StatusOK {
		if err := recordCriticalResult(cmd.Context(), n, result); err != nil {
			return err
		}
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(result)
	}
	printCriticalResult(result)
	return nil
}

func recordCriticalResult(ctx context.Context, n types.Nuclide, result types.CriticalMass) error {
	store, err := knowledge.NewStore(knowledgeConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	id := fmt.Sprintf("calc-critical-%s-%s", strings.ToLower(n.String()), result.Geometry)
	confidence := 0.7
	if result.Neutronics != nil && result.Neutronics.NuEstimated {
		confidence = 0.4
	}
	return store.RecordCalculation(ctx, n, id, result, confidence, []string{"critical-mass", string(result.Geometry)})
}

func printCriticalResult(r types.CriticalMass) {
	switch r.Status {
	case types.StatusMissingData:
		fmt.Printf("%s: no cross-section data (%s)\n", r.Nuclide, r.Note)
		return
	case types.StatusNonFissile:
		fmt.Printf("%s: not thermally fissile (%s)\n", r.Nuclide, r.Note)
		return
	}

	name := r.Name
	if name == "" {
		name = r.Nuclide.String()
	}
	fmt.Printf("%s  %s, density %.0f kg/m^3", name, r.Geometry, r.DensityKgM3)
	if r.Reflector {
		fmt.Print(", reflected")
	}
	fmt.Println()

	if r.Status == types.StatusSubcritical {
		fmt.Printf("  SUBCRITICAL at any size: %s\n", r.Note)
	}
	fmt.Printf("  critical radius  %10.4f m\n", r.CriticalRadiusM)
	fmt.Printf("  critical volume  %10.6f m^3\n", r.CriticalVolumeM3)
	fmt.Printf("  critical mass    %10.2f kg\n", r.CriticalMassKg)

	if np := r.Neutronics; np != nil {
		fmt.Printf("  nu=%.3f", np.NeutronsPerFission)
		if np.NuEstimated {
			fmt.Print(" (estimated)")
		}
		fmt.Printf("  k_inf=%.4f  k_eff=%.4f\n", np.KInfinity, np.KEffective)
		fmt.Printf("  sigma_f=%.1f b  sigma_a=%.1f b  sigma_s=%.1f b\n",
			np.FissionBarns, np.AbsorptionBarns, np.ScatteringBarns)
		fmt.Printf("  L=%.4f m  M^2=%.6f m^2  B^2=%.4f m^-2\n",
			np.DiffusionLengthM, np.MigrationAreaM2, np.BucklingM2)
	}
	if e := r.Energy; e != nil {
		fmt.Printf("  fission energy   %10.3e J  (%.3f kt TNT)\n",
			e.TotalFissionJ, e.TotalFissionKtTNT)
	}
}
