package fwave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/elastic1d/elasticity"
)

func TestLinearAgreement(t *testing.T) {
	// For linear media the two-shock approximation is the exact solution
	var (
		ql  = elasticity.State{Strain: 1, Momentum: 0}
		qr  = elasticity.State{Strain: 0, Momentum: 0}
		aux = elasticity.MaterialParams{Rho: 1, K1: 4, K2: 0}
	)
	approx, err := Solve(ql, qr, aux, aux)
	assert.NoError(t, err)
	exact, err := elasticity.Solve(ql, qr, aux, aux)
	assert.NoError(t, err)

	assert.InDelta(t, exact.LeftStar.Strain, approx.LeftStar.Strain, 1e-12)
	assert.InDelta(t, exact.LeftStar.Momentum, approx.LeftStar.Momentum, 1e-12)
	assert.InDelta(t, exact.RightStar.Strain, approx.RightStar.Strain, 1e-12)
	assert.InDelta(t, exact.UStar, approx.UStar, 1e-12)
	assert.InDelta(t, -2.0, approx.Waves[0].Head, 1e-12)
	assert.InDelta(t, 2.0, approx.Waves[1].Head, 1e-12)
}

func TestComparableShape(t *testing.T) {
	// The approximation reuses the exact solver's Solution shape so the
	// two can be sampled side by side
	var (
		ql   = elasticity.State{Strain: 2.1, Momentum: 0}
		qr   = elasticity.State{Strain: 0, Momentum: 0}
		auxl = elasticity.MaterialParams{Rho: 1, K1: 5, K2: 1}
		auxr = elasticity.MaterialParams{Rho: 1, K1: 2, K2: 1}
	)
	sol, err := Solve(ql, qr, auxl, auxr)
	assert.NoError(t, err)

	// Both families are modeled as shocks at the local characteristic
	// speeds of the adjacent input states
	assert.Equal(t, elasticity.Shock, sol.Waves[0].Type)
	assert.Equal(t, elasticity.Shock, sol.Waves[1].Type)
	assert.InDelta(t, -elasticity.SoundSpeed(sol.Law, ql.Strain, auxl), sol.Waves[0].Head, 1e-12)
	assert.InDelta(t, elasticity.SoundSpeed(sol.Law, qr.Strain, auxr), sol.Waves[1].Head, 1e-12)

	// Evaluator works on the shared shape: far field is the input pair,
	// the middle region holds the star states
	assert.Equal(t, ql, sol.Eval(-100))
	assert.Equal(t, qr, sol.Eval(100))
	assert.Equal(t, sol.LeftStar, sol.Eval(-1e-9))
	assert.Equal(t, sol.RightStar, sol.Eval(1e-9))
}

func TestInvalidInput(t *testing.T) {
	var (
		ql = elasticity.State{Strain: 1, Momentum: 0}
		qr = elasticity.State{Strain: 0, Momentum: 0}
		ok = elasticity.MaterialParams{Rho: 1, K1: 5, K2: 1}
	)
	_, err := Solve(ql, qr, elasticity.MaterialParams{Rho: -1, K1: 5, K2: 1}, ok)
	assert.ErrorIs(t, err, elasticity.ErrInvalidMaterial)
}
