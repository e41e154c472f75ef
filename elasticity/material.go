package elasticity

import (
	"fmt"
	"math"

	"github.com/notargets/elastic1d/utils"
)

// MaterialParams holds the per-side material description: density and the
// two coefficients of the quadratic stress-strain law. A Riemann problem
// carries one instance per side of the x=0 interface and never mutates it.
type MaterialParams struct {
	Rho float64 // density
	K1  float64 // linear stiffness
	K2  float64 // quadratic stiffness, K2 = 0 degenerates to linear acoustics
}

func (p MaterialParams) Validate(law StressLaw, eps float64) (err error) {
	if p.Rho <= 0 {
		err = fmt.Errorf("rho = %v: %w", p.Rho, ErrInvalidMaterial)
		return
	}
	if dsig := law.DStress(eps, p); dsig <= 0 {
		err = fmt.Errorf("dstress(%v) = %v: %w", eps, dsig, ErrInvalidMaterial)
		return
	}
	return
}

// State is the conserved pair of the p-system: strain and momentum rho*u.
type State struct {
	Strain, Momentum float64
}

func (q State) Velocity(p MaterialParams) float64 {
	return q.Momentum / p.Rho
}

/*
StressLaw is the plug point for the constitutive relation. The root finder
and evaluator only ever touch the law through this interface, so a
different stress-strain relation can be substituted without changing the
solve structure. Everything specific to the functional form of sigma lives
behind these five methods.
*/
type StressLaw interface {
	Stress(eps float64, p MaterialParams) float64
	DStress(eps float64, p MaterialParams) float64
	// VelocityIntegral is the velocity change along an integral curve of
	// either nonlinear family, integrating the characteristic speed
	// c(e) = sqrt(dsigma/de / rho) in strain from eps0 to eps.
	VelocityIntegral(eps0, eps float64, p MaterialParams) float64
	// StrainAtStress inverts the stress law on its physical branch, the
	// one with positive slope.
	StrainAtStress(sigma float64, p MaterialParams) (float64, error)
	// FanStrain is the strain inside a centered rarefaction at similarity
	// coordinate xi, i.e. the strain whose characteristic speed is |xi|.
	FanStrain(xi float64, p MaterialParams) float64
}

// QuadraticLaw is the stress law of the spatially-varying elasticity
// problem: sigma = K1*eps + K2*eps^2. Evaluable at any real eps, negative
// strain meaning compression.
type QuadraticLaw struct{}

func (QuadraticLaw) Stress(eps float64, p MaterialParams) float64 {
	return p.K1*eps + p.K2*utils.POW(eps, 2)
}

func (QuadraticLaw) DStress(eps float64, p MaterialParams) float64 {
	return p.K1 + 2*p.K2*eps
}

func (l QuadraticLaw) VelocityIntegral(eps0, eps float64, p MaterialParams) (du float64) {
	if p.K2 == 0 {
		// Linear law, constant characteristic speed
		c := math.Sqrt(p.K1 / p.Rho)
		du = c * (eps - eps0)
		return
	}
	var (
		d0 = l.DStress(eps0, p)
		d1 = l.DStress(eps, p)
	)
	du = (math.Pow(d1, 1.5) - math.Pow(d0, 1.5)) / (3 * p.K2 * math.Sqrt(p.Rho))
	return
}

func (QuadraticLaw) StrainAtStress(sigma float64, p MaterialParams) (eps float64, err error) {
	if p.K2 == 0 {
		eps = sigma / p.K1
		return
	}
	disc := utils.POW(p.K1, 2) + 4*p.K2*sigma
	if disc < 0 {
		err = fmt.Errorf("no strain on the positive-slope branch at sigma = %v: %w",
			sigma, ErrInvalidMaterial)
		return
	}
	eps = (-p.K1 + math.Sqrt(disc)) / (2 * p.K2)
	return
}

// FanStrain inverts c(eps) = |xi|. Only meaningful inside a rarefaction,
// which the classifier never produces for a linear law.
func (QuadraticLaw) FanStrain(xi float64, p MaterialParams) float64 {
	return (p.Rho*utils.POW(xi, 2) - p.K1) / (2 * p.K2)
}

// SoundSpeed is the local characteristic speed magnitude sqrt(dsigma/de / rho).
func SoundSpeed(law StressLaw, eps float64, p MaterialParams) float64 {
	return math.Sqrt(law.DStress(eps, p) / p.Rho)
}

// Impedance is the local acoustic impedance rho*c, used to seed the root
// finder from the linearized problem.
func Impedance(law StressLaw, eps float64, p MaterialParams) float64 {
	return math.Sqrt(p.Rho * law.DStress(eps, p))
}
