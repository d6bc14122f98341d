// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nuclide-engine/internal/decay"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Integrate decay chains and point-kinetics models",
	Long: `Decay integrates systems of coupled first-order decay equations with
an adaptive Runge-Kutta method. The chain subcommand reads a YAML chain
description; kinetics runs the one-group point-kinetics equation.`,
}

func init() {
	rootCmd.AddCommand(decayCmd)
}

// decayOptions builds integrator tolerances from config; zero values
// select the package defaults.
func decayOptions() decay.Options {
	return decay.Options{
		RelTol:   viper.GetFloat64("decay.rel_tol"),
		AbsTol:   viper.GetFloat64("decay.abs_tol"),
		MaxSteps: viper.GetInt("decay.max_steps"),
	}
}

// --- chain subcommand ---

var decayChainCmd = &cobra.Command{
	Use:   "chain <chain.yaml>",
	Short: "Evolve a decay chain from a YAML description",
	Long: `Chain reads a decay chain from a YAML file listing nuclides in decay
order (each feeding the next) with half-lives, branching fractions, and
initial quantities, plus the sample times in seconds. Half-lives must be
positive; model a stable end of chain with a very large half_life_s.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecayChain,
}

func init() {
	decayChainCmd.Flags().Bool("json", false, "emit JSON instead of text")
	decayCmd.AddCommand(decayChainCmd)
}

func runDecayChain(cmd *cobra.Command, args []string) error {
	cf, err := decay.LoadChainFile(args[0])
	if err != nil {
		return err
	}

	sol, err := decay.Solve(cf.Nuclides, cf.TimesS, decayOptions())
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(sol)
	}
	printChainSolution(sol)
	return nil
}

func printChainSolution(sol *decay.Solution) {
	fmt.Printf("%-14s", "t (s)")
	for _, name := range sol.Names {
		fmt.Printf("  %14s", name)
	}
	fmt.Println()

	for j, t := range sol.Times {
		fmt.Printf("%-14.6g", t)
		for i := range sol.Names {
			fmt.Printf("  %14.6e", sol.Concentrations[i][j])
		}
		fmt.Println()
	}

	fmt.Println("\nactivities (Bq):")
	for j, t := range sol.Times {
		fmt.Printf("%-14.6g", t)
		for i := range sol.Names {
			fmt.Printf("  %14.6e", sol.Activities[i][j])
		}
		fmt.Println()
	}
}

// --- kinetics subcommand ---

var decayKineticsCmd = &cobra.Command{
	Use:   "kinetics",
	Short: "Integrate the one-group point-kinetics equation",
	Long: `Kinetics evolves a neutron population under
dn/dt = ((k_eff - 1)/Lambda - lambda) * n with a mean generation time
Lambda and an external loss constant lambda. Delayed neutrons are not
modeled, so supercritical growth is the prompt bound.`,
	RunE: runDecayKinetics,
}

func init() {
	decayKineticsCmd.Flags().Float64("k-eff", 1.0, "effective multiplication factor")
	decayKineticsCmd.Flags().Float64("generation-time", 1e-8, "mean neutron generation time in seconds")
	decayKineticsCmd.Flags().Float64("loss", 0, "external loss constant in 1/s")
	decayKineticsCmd.Flags().Float64("n0", 1.0, "initial neutron density")
	decayKineticsCmd.Flags().Float64("duration", 1e-6, "total time to integrate in seconds")
	decayKineticsCmd.Flags().Int("samples", 10, "number of sample points")
	decayKineticsCmd.Flags().Bool("json", false, "emit JSON instead of text")
	decayCmd.AddCommand(decayKineticsCmd)
}

func runDecayKinetics(cmd *cobra.Command, args []string) error {
	params := decay.KineticsParams{}
	params.KEff, _ = cmd.Flags().GetFloat64("k-eff")
	params.GenerationTime, _ = cmd.Flags().GetFloat64("generation-time")
	params.LossLambda, _ = cmd.Flags().GetFloat64("loss")
	params.InitialDensity, _ = cmd.Flags().GetFloat64("n0")

	duration, _ := cmd.Flags().GetFloat64("duration")
	samples, _ := cmd.Flags().GetInt("samples")
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g s", duration)
	}
	if samples < 1 {
		return fmt.Errorf("need at least one sample, got %d", samples)
	}

	times := make([]float64, samples)
	for i := range times {
		times[i] = duration * float64(i+1) / float64(samples)
	}

	result, err := decay.PointKinetics(params, times, decayOptions())
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(result)
	}
	fmt.Printf("%-14s  %14s\n", "t (s)", "n(t)")
	for i, t := range result.Times {
		fmt.Printf("%-14.6g  %14.6e\n", t, result.Densities[i])
	}
	return nil
}
