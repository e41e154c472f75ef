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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/elastic1d/InputParameters"
	"github.com/notargets/elastic1d/elasticity"
	"github.com/notargets/elastic1d/utils"
)

type ModelSolve struct {
	InputFile  string
	Time       float64
	XMin, XMax float64
	Samples    int
	Profile    bool
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one Riemann problem exactly and print the solution profile",
	Long: `
Solves a single Riemann problem for the 1D nonlinear elasticity system
exactly: intermediate states, wave speeds, wave types, and the sampled
self-similar profile at the requested time.

elastic1d solve -I problem.yaml -t 0.5`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSolve{}
		ms.InputFile, _ = cmd.Flags().GetString("inputFile")
		ms.Time, _ = cmd.Flags().GetFloat64("time")
		ms.XMin, _ = cmd.Flags().GetFloat64("xMin")
		ms.XMax, _ = cmd.Flags().GetFloat64("xMax")
		ms.Samples, _ = cmd.Flags().GetInt("samples")
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		if ms.Profile {
			defer profile.Start().Stop()
		}
		ip := processInput(ms.InputFile)
		RunSolve(ms, ip)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputFile", "I", "", "YAML file describing the Riemann problem")
	SolveCmd.Flags().Float64P("time", "t", 0.5, "time at which to sample the self-similar solution")
	SolveCmd.Flags().Float64("xMin", -5, "left edge of the sampled interval")
	SolveCmd.Flags().Float64("xMax", 5, "right edge of the sampled interval")
	SolveCmd.Flags().IntP("samples", "k", 21, "number of sample points across [xMin, xMax]")
	SolveCmd.Flags().Bool("profile", false, "write a CPU profile for the solve")
}

func processInput(fileName string) (ip *InputParameters.RiemannInput) {
	if len(fileName) == 0 {
		ip = InputParameters.Default()
		fmt.Printf("No input file given, using the default problem\n")
		ip.Print()
		return
	}
	var (
		data []byte
		err  error
	)
	if data, err = ioutil.ReadFile(fileName); err != nil {
		fmt.Printf("error reading input file: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Stiff-to-soft interface"
Left:  {Strain: 2.1, Momentum: 0}
Right: {Strain: 0.0, Momentum: 0}
LeftMaterial:  {Rho: 1, K1: 5, K2: 1}
RightMaterial: {Rho: 1, K1: 2, K2: 1}
########################################
`
		fmt.Printf("Example of a problem file:%s", exampleFile)
		os.Exit(1)
	}
	ip = &InputParameters.RiemannInput{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error parsing input file: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func RunSolve(ms *ModelSolve, ip *InputParameters.RiemannInput) {
	ql, qr := ip.States()
	auxl, auxr := ip.Materials()
	sol, err := elasticity.Solve(ql, qr, auxl, auxr)
	if err != nil {
		fmt.Printf("solve failed: %s\n", err.Error())
		os.Exit(1)
	}
	PrintSolution(sol)
	PrintProfile(sol, ms.Time, ms.XMin, ms.XMax, ms.Samples)
}

func PrintSolution(sol *elasticity.Solution) {
	states := sol.States()
	names := []string{"Left", "LeftStar", "RightStar", "Right"}
	fmt.Printf("\nStates:\n")
	for i, q := range states {
		fmt.Printf("%10s: Strain = %10.6f, Momentum = %10.6f\n", names[i], q.Strain, q.Momentum)
	}
	fmt.Printf("\nWaves:\n")
	for i, w := range sol.Waves {
		switch w.Type {
		case elasticity.Shock:
			fmt.Printf("%d-wave: %s, speed = %10.6f\n", i+1, w.Type, w.Head)
		case elasticity.Rarefaction:
			fmt.Printf("%d-wave: %s, fan speeds = [%10.6f, %10.6f]\n", i+1, w.Type, w.Head, w.Tail)
		}
	}
	fmt.Printf("Stationary interface wave at x/t = 0\n")
	fmt.Printf("\nuStar = %10.6f, sigmaStar = %10.6f\n", sol.UStar, sol.SigmaStar)
}

func PrintProfile(sol *elasticity.Solution, timeT, xmin, xmax float64, samples int) {
	if timeT <= 0 {
		fmt.Printf("time must be positive to sample the profile\n")
		os.Exit(1)
	}
	X := floats.Span(utils.ConstArray(samples, 0), xmin, xmax)
	fmt.Printf("\nProfile at t = %g:\n", timeT)
	fmt.Printf("%10s %12s %12s %12s %12s\n", "x", "strain", "momentum", "stress", "velocity")
	for _, x := range X {
		q := sol.Eval(x / timeT)
		var (
			p   = sideParams(sol, x)
			sig = sol.Law.Stress(q.Strain, p)
			u   = q.Velocity(p)
		)
		fmt.Printf("%10.4f %12.6f %12.6f %12.6f %12.6f\n", x, q.Strain, q.Momentum, sig, u)
	}
}

// sideParams picks the material governing the sampled point: left of the
// interface for x < 0, right otherwise.
func sideParams(sol *elasticity.Solution, x float64) (p elasticity.MaterialParams) {
	if x < 0 {
		p = sol.AuxL
		return
	}
	p = sol.AuxR
	return
}
