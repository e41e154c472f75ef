/*
Package fwave approximates the elasticity Riemann problem with the
two-shock flux-difference splitting: both nonlinear waves move at the
local characteristic speeds of the adjacent input states, and the jump in
flux across the interface is decomposed onto the two characteristic
directions. Cheap, non-iterative, and inexact for strong waves; it emits
the same Solution shape as the exact solver so the two can be compared
pointwise.
*/
package fwave

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/elastic1d/elasticity"
)

// Solve decomposes the flux jump f(q_r) - f(q_l) onto the characteristic
// directions r1 = (1, Z_l), r2 = (1, -Z_r) by solving the 2x2 system
// R*beta = df, then recovers the middle states from the waves. Wave p
// carries the flux jump beta_p * r_p; its state jump is that divided by
// the wave speed.
func Solve(ql, qr elasticity.State, auxl, auxr elasticity.MaterialParams) (sol *elasticity.Solution, err error) {
	var (
		law = elasticity.QuadraticLaw{}
	)
	if err = auxl.Validate(law, ql.Strain); err != nil {
		err = fmt.Errorf("left: %w", err)
		return
	}
	if err = auxr.Validate(law, qr.Strain); err != nil {
		err = fmt.Errorf("right: %w", err)
		return
	}
	var (
		s1 = -elasticity.SoundSpeed(law, ql.Strain, auxl)
		s2 = elasticity.SoundSpeed(law, qr.Strain, auxr)
		zl = elasticity.Impedance(law, ql.Strain, auxl)
		zr = elasticity.Impedance(law, qr.Strain, auxr)
		// Flux of the p-system is (-u, -sigma)
		df = mat.NewVecDense(2, []float64{
			-(qr.Velocity(auxr) - ql.Velocity(auxl)),
			-(law.Stress(qr.Strain, auxr) - law.Stress(ql.Strain, auxl)),
		})
		r    = mat.NewDense(2, 2, []float64{1, 1, zl, -zr})
		beta mat.VecDense
	)
	if err = beta.SolveVec(r, df); err != nil {
		err = fmt.Errorf("fwave: characteristic decomposition is singular: %w", err)
		return
	}
	var (
		b1, b2 = beta.AtVec(0), beta.AtVec(1)
		qStarL = elasticity.State{
			Strain:   ql.Strain + b1/s1,
			Momentum: ql.Momentum + b1*zl/s1,
		}
		qStarR = elasticity.State{
			Strain:   qr.Strain - b2/s2,
			Momentum: qr.Momentum + b2*zr/s2,
		}
		uStar = qStarL.Velocity(auxl)
	)
	sol = &elasticity.Solution{
		Left:      ql,
		LeftStar:  qStarL,
		RightStar: qStarR,
		Right:     qr,
		AuxL:      auxl,
		AuxR:      auxr,
		Law:       law,
		Waves: [2]elasticity.Wave{
			{Type: elasticity.Shock, Head: s1, Tail: s1},
			{Type: elasticity.Shock, Head: s2, Tail: s2},
		},
		UStar:     uStar,
		SigmaStar: law.Stress(qStarL.Strain, auxl),
	}
	return
}
