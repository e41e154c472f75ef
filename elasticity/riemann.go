package elasticity

import (
	"fmt"
	"math"
)

type WaveType uint8

const (
	Shock WaveType = iota
	Rarefaction
)

var wave_names = []string{"Shock", "Rarefaction"}

func (wt WaveType) String() string {
	return wave_names[wt]
}

// Wave describes one genuinely-nonlinear wave. For a shock Head == Tail ==
// the Rankine-Hugoniot speed. For a rarefaction Head is the edge adjacent
// to the input state and Tail the edge adjacent to the star state, so the
// fan occupies xi between them. Family 1 waves have Head <= Tail <= 0,
// family 2 waves 0 <= Tail <= Head.
type Wave struct {
	Type       WaveType
	Head, Tail float64
}

// Solution is the resolved self-similar Riemann solution: four states in
// xi order, the two nonlinear waves, and the shared interface velocity and
// stress. A stationary wave always sits at xi = 0 between LeftStar and
// RightStar; it degenerates to no jump when the two materials coincide.
type Solution struct {
	Left, LeftStar, RightStar, Right State
	AuxL, AuxR                       MaterialParams
	Law                              StressLaw
	Waves                            [2]Wave
	UStar, SigmaStar                 float64
}

func (sol *Solution) States() [4]State {
	return [4]State{sol.Left, sol.LeftStar, sol.RightStar, sol.Right}
}

// Speeds reports the leading-edge speed of each nonlinear wave.
func (sol *Solution) Speeds() [2]float64 {
	return [2]float64{sol.Waves[0].Head, sol.Waves[1].Head}
}

// Eval returns the state on the ray xi = x/t. Pure and stateless: valid
// for any real xi, any number of times, in any order. The xi = 0 ray
// reports the right-star side of the stationary interface.
func (sol *Solution) Eval(xi float64) (q State) {
	var (
		w1, w2 = sol.Waves[0], sol.Waves[1]
	)
	switch {
	case xi < w1.Head:
		q = sol.Left
	case w1.Type == Rarefaction && xi <= w1.Tail:
		q = sol.fan1(xi)
	case xi < 0:
		q = sol.LeftStar
	case xi < w2.Tail:
		q = sol.RightStar
	case w2.Type == Rarefaction && xi <= w2.Head:
		q = sol.fan2(xi)
	default:
		q = sol.Right
	}
	return
}

func (sol *Solution) fan1(xi float64) (q State) {
	var (
		p   = sol.AuxL
		eps = sol.Law.FanStrain(xi, p)
		u   = sol.Left.Velocity(p) + sol.Law.VelocityIntegral(sol.Left.Strain, eps, p)
	)
	q = State{Strain: eps, Momentum: p.Rho * u}
	return
}

func (sol *Solution) fan2(xi float64) (q State) {
	var (
		p   = sol.AuxR
		eps = sol.Law.FanStrain(xi, p)
		u   = sol.Right.Velocity(p) - sol.Law.VelocityIntegral(sol.Right.Strain, eps, p)
	)
	q = State{Strain: eps, Momentum: p.Rho * u}
	return
}

// SolverConfig bounds the scalar root find. The residual is the velocity
// mismatch u*_l - u*_r at the interface; tolerance is applied relative to
// the velocity scale of the problem.
type SolverConfig struct {
	Tolerance            float64
	MaxNewton, MaxBisect int
}

func DefaultSolverConfig() SolverConfig {
	return SolverConfig{Tolerance: 1e-12, MaxNewton: 100, MaxBisect: 200}
}

// Solve computes the exact Riemann solution for the quadratic stress law
// with default iteration bounds.
func Solve(ql, qr State, auxl, auxr MaterialParams) (*Solution, error) {
	return SolveLaw(QuadraticLaw{}, ql, qr, auxl, auxr, DefaultSolverConfig())
}

/*
SolveLaw resolves the Riemann problem for an arbitrary stress law.

The two star states are coupled by velocity continuity and stress
continuity across the stationary interface. Stress continuity eliminates
eps*_r = StrainAtStress(sigma_l(eps*_l)), reducing the problem to one
scalar equation

	F(eps*_l) = u*_l(eps*_l) - u*_r(eps*_r(eps*_l)) = 0

with u* on each side given by the integral-curve relation from the input
state. F is strictly increasing whenever the characteristic speeds are
real, so a Newton iteration seeded from the linearized (acoustic) solution
and safeguarded by bisection on a sign-change bracket converges for any
valid input.
*/
func SolveLaw(law StressLaw, ql, qr State, auxl, auxr MaterialParams,
	cfg SolverConfig) (sol *Solution, err error) {
	if err = auxl.Validate(law, ql.Strain); err != nil {
		err = fmt.Errorf("left: %w", err)
		return
	}
	if err = auxr.Validate(law, qr.Strain); err != nil {
		err = fmt.Errorf("right: %w", err)
		return
	}
	var (
		ul, ur = ql.Velocity(auxl), qr.Velocity(auxr)
		sigl   = law.Stress(ql.Strain, auxl)
		sigr   = law.Stress(qr.Strain, auxr)
		uScale = math.Max(1, math.Max(math.Abs(ul), math.Abs(ur)))
	)
	// The coupled residual: velocity mismatch at the interface for a trial
	// left star strain. Trial points where the right branch inversion or
	// the slope positivity fails are reported so the bracket search can
	// back off.
	residual := func(epsl float64) (f, epsr float64, ok bool) {
		if law.DStress(epsl, auxl) <= 0 {
			return
		}
		var rerr error
		if epsr, rerr = law.StrainAtStress(law.Stress(epsl, auxl), auxr); rerr != nil {
			return
		}
		if law.DStress(epsr, auxr) <= 0 {
			return
		}
		usl := ul + law.VelocityIntegral(ql.Strain, epsl, auxl)
		usr := ur - law.VelocityIntegral(qr.Strain, epsr, auxr)
		f, ok = usl-usr, true
		return
	}

	// Acoustic seed: linearize both wave curves about the input states and
	// intersect them using the local impedances.
	var (
		zl, zr  = Impedance(law, ql.Strain, auxl), Impedance(law, qr.Strain, auxr)
		sigSeed = ((ur - ul) + sigl/zl + sigr/zr) / (1/zl + 1/zr)
	)
	seed, serr := law.StrainAtStress(sigSeed, auxl)
	if serr != nil {
		seed = 0.5 * (ql.Strain + qr.Strain)
	}
	f, _, ok := residual(seed)
	if !ok {
		seed = 0.5 * (ql.Strain + qr.Strain)
		if f, _, ok = residual(seed); !ok {
			err = &SolveError{Wrapped: fmt.Errorf("seed strain infeasible: %w", ErrInvalidMaterial)}
			return
		}
	}

	// Grow a sign-change bracket outward from the seed. F is increasing,
	// so a negative end lies below the root and a positive end above it.
	var (
		lo, hi   = seed, seed
		flo, fhi = f, f
		step     = math.Max(1, math.Abs(ql.Strain)+math.Abs(qr.Strain))
	)
	for i := 0; flo > 0 && i < 64; i++ {
		trial := lo - step
		if ft, _, tok := residual(trial); tok {
			lo, flo = trial, ft
			step *= 2
		} else {
			step *= 0.5
		}
	}
	step = math.Max(1, math.Abs(ql.Strain)+math.Abs(qr.Strain))
	for i := 0; fhi < 0 && i < 64; i++ {
		trial := hi + step
		if ft, _, tok := residual(trial); tok {
			hi, fhi = trial, ft
			step *= 2
		} else {
			step *= 0.5
		}
	}
	if flo > 0 || fhi < 0 {
		err = &SolveError{Residual: f, Wrapped: ErrNonConvergence}
		return
	}

	// Safeguarded Newton on F. The derivative follows from
	// d(VelocityIntegral)/deps = c(eps) on each side plus the chain rule
	// through the stress-continuity elimination.
	var (
		epsl, epsr = seed, 0.
		iters      int
		converged  bool
	)
	f, epsr, _ = residual(epsl)
	for iters = 0; iters < cfg.MaxNewton; iters++ {
		if math.Abs(f) <= cfg.Tolerance*uScale {
			converged = true
			break
		}
		var (
			dl    = law.DStress(epsl, auxl)
			dr    = law.DStress(epsr, auxr)
			slope = math.Sqrt(dl/auxl.Rho) + dl/math.Sqrt(auxr.Rho*dr)
			next  = epsl - f/slope
		)
		if next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}
		fn, en, nok := residual(next)
		if !nok {
			next = 0.5 * (lo + hi)
			if fn, en, nok = residual(next); !nok {
				break
			}
		}
		epsl, epsr, f = next, en, fn
		if f > 0 {
			hi = epsl
		} else {
			lo = epsl
		}
	}
	if !converged {
		// Newton budget exhausted or stalled: finish on pure bisection.
		for i := 0; i < cfg.MaxBisect; i++ {
			if math.Abs(f) <= cfg.Tolerance*uScale {
				converged = true
				break
			}
			mid := 0.5 * (lo + hi)
			fm, em, mok := residual(mid)
			if !mok {
				break
			}
			epsl, epsr, f = mid, em, fm
			if f > 0 {
				hi = mid
			} else {
				lo = mid
			}
			iters++
		}
	}
	if !converged && math.Abs(f) > cfg.Tolerance*uScale {
		err = &SolveError{Iterations: iters, Residual: f, Wrapped: ErrNonConvergence}
		return
	}

	var (
		uStar  = ul + law.VelocityIntegral(ql.Strain, epsl, auxl)
		qStarL = State{Strain: epsl, Momentum: auxl.Rho * uStar}
		qStarR = State{Strain: epsr, Momentum: auxr.Rho * uStar}
	)
	sol = &Solution{
		Left:      ql,
		LeftStar:  qStarL,
		RightStar: qStarR,
		Right:     qr,
		AuxL:      auxl,
		AuxR:      auxr,
		Law:       law,
		UStar:     uStar,
		SigmaStar: law.Stress(epsl, auxl),
	}
	sol.Waves[0] = classify1(law, ql, qStarL, auxl)
	sol.Waves[1] = classify2(law, qr, qStarR, auxr)
	return
}

// classify1 applies the entropy condition for the left-going family: the
// connecting wave is a shock iff eps* > eps, since the characteristic
// speed -c(eps) decreases with strain. A strain decrease only spreads into
// a fan when the characteristic speeds actually separate; for a linear law
// they coincide and the wave stays a sharp jump at the acoustic speed.
func classify1(law StressLaw, q, qStar State, p MaterialParams) (w Wave) {
	var (
		cq, cs = SoundSpeed(law, q.Strain, p), SoundSpeed(law, qStar.Strain, p)
	)
	if qStar.Strain < q.Strain && cs < cq {
		w = Wave{Type: Rarefaction, Head: -cq, Tail: -cs}
		return
	}
	s := -shockSpeed(law, q.Strain, qStar.Strain, p)
	w = Wave{Type: Shock, Head: s, Tail: s}
	return
}

func classify2(law StressLaw, q, qStar State, p MaterialParams) (w Wave) {
	var (
		cq, cs = SoundSpeed(law, q.Strain, p), SoundSpeed(law, qStar.Strain, p)
	)
	if qStar.Strain < q.Strain && cs < cq {
		w = Wave{Type: Rarefaction, Head: cq, Tail: cs}
		return
	}
	s := shockSpeed(law, q.Strain, qStar.Strain, p)
	w = Wave{Type: Shock, Head: s, Tail: s}
	return
}

// shockSpeed is the Rankine-Hugoniot speed magnitude
// sqrt((sigma* - sigma) / (rho * (eps* - eps))), reducing to the
// characteristic speed for a vanishing jump.
func shockSpeed(law StressLaw, eps, epsStar float64, p MaterialParams) (s float64) {
	var (
		deps = epsStar - eps
		dsig = law.Stress(epsStar, p) - law.Stress(eps, p)
	)
	if math.Abs(deps) < 1e-14 {
		s = SoundSpeed(law, eps, p)
		return
	}
	s = math.Sqrt(dsig / (deps * p.Rho))
	return
}
