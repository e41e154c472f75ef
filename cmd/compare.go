/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/elastic1d/InputParameters"
	"github.com/notargets/elastic1d/elasticity"
	"github.com/notargets/elastic1d/fwave"
	"github.com/notargets/elastic1d/utils"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run the exact and f-wave solvers side by side",
	Long: `
Solves the same Riemann problem with the exact solver and the two-shock
flux-difference (f-wave) approximation and reports the pointwise deviation
between the two profiles.

elastic1d compare -I problem.yaml -t 0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSolve{}
		ms.InputFile, _ = cmd.Flags().GetString("inputFile")
		ms.Time, _ = cmd.Flags().GetFloat64("time")
		ms.XMin, _ = cmd.Flags().GetFloat64("xMin")
		ms.XMax, _ = cmd.Flags().GetFloat64("xMax")
		ms.Samples, _ = cmd.Flags().GetInt("samples")
		ip := processInput(ms.InputFile)
		RunCompare(ms, ip)
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	CompareCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the Riemann problem")
	CompareCmd.Flags().Float64P("time", "t", 0.5, "time at which to sample the self-similar solution")
	CompareCmd.Flags().Float64("xMin", -5, "left edge of the sampled interval")
	CompareCmd.Flags().Float64("xMax", 5, "right edge of the sampled interval")
	CompareCmd.Flags().IntP("samples", "k", 21, "number of sample points across [xMin, xMax]")
}

func RunCompare(ms *ModelSolve, ip *InputParameters.RiemannInput) {
	ql, qr := ip.States()
	auxl, auxr := ip.Materials()
	exact, err := elasticity.Solve(ql, qr, auxl, auxr)
	if err != nil {
		fmt.Printf("exact solve failed: %s\n", err.Error())
		os.Exit(1)
	}
	approx, err := fwave.Solve(ql, qr, auxl, auxr)
	if err != nil {
		fmt.Printf("fwave solve failed: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("\n=== Exact solver ===\n")
	PrintSolution(exact)
	fmt.Printf("\n=== f-wave solver ===\n")
	PrintSolution(approx)

	if ms.Time <= 0 {
		fmt.Printf("time must be positive to sample the profiles\n")
		os.Exit(1)
	}
	var (
		X                 = floats.Span(utils.ConstArray(ms.Samples, 0), ms.XMin, ms.XMax)
		maxStrain, maxMom float64
	)
	fmt.Printf("\nDeviation at t = %g:\n", ms.Time)
	fmt.Printf("%10s %12s %12s %14s %14s\n", "x", "strainExact", "strainFWave", "momentumExact", "momentumFWave")
	for _, x := range X {
		qe := exact.Eval(x / ms.Time)
		qa := approx.Eval(x / ms.Time)
		maxStrain = math.Max(maxStrain, math.Abs(qe.Strain-qa.Strain))
		maxMom = math.Max(maxMom, math.Abs(qe.Momentum-qa.Momentum))
		fmt.Printf("%10.4f %12.6f %12.6f %14.6f %14.6f\n", x, qe.Strain, qa.Strain, qe.Momentum, qa.Momentum)
	}
	fmt.Printf("\nmax |dStrain| = %g, max |dMomentum| = %g\n", maxStrain, maxMom)
}
