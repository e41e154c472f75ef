package elasticity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadraticLaw(t *testing.T) {
	var (
		law = QuadraticLaw{}
		p   = MaterialParams{Rho: 1, K1: 5, K2: 1}
	)
	assert.InDelta(t, 14.91, law.Stress(2.1, p), 1e-12)
	assert.InDelta(t, 9.2, law.DStress(2.1, p), 1e-12)
	// Compression is a valid strain range
	assert.InDelta(t, -4.0, law.Stress(-1, p), 1e-12)

	// Stress inversion recovers the strain on the positive-slope branch
	eps, err := law.StrainAtStress(14.91, p)
	assert.NoError(t, err)
	assert.InDelta(t, 2.1, eps, 1e-12)

	// Velocity change along an integral curve, closed form for the
	// quadratic law: (dsig(eps)^1.5 - dsig(eps0)^1.5) / (3 K2 sqrt(rho))
	assert.InDelta(t, 2.446639763317728, law.VelocityIntegral(0, 1, p), 1e-12)
	assert.InDelta(t, -2.446639763317728, law.VelocityIntegral(1, 0, p), 1e-12)

	// Fan strain inverts the characteristic speed: c(eps) = 3 at eps = 2
	assert.InDelta(t, 2.0, law.FanStrain(-3, p), 1e-12)
	assert.InDelta(t, 2.0, law.FanStrain(3, p), 1e-12)
}

func TestLinearDegenerate(t *testing.T) {
	var (
		law = QuadraticLaw{}
		p   = MaterialParams{Rho: 1, K1: 4, K2: 0}
	)
	// K2 = 0 must not divide by K2 anywhere
	assert.InDelta(t, 4.0, law.Stress(1, p), 1e-12)
	eps, err := law.StrainAtStress(2, p)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, eps, 1e-12)
	// Constant characteristic speed c = 2
	assert.InDelta(t, 2.0, law.VelocityIntegral(0, 1, p), 1e-12)
	assert.InDelta(t, 2.0, SoundSpeed(law, 7, p), 1e-12)
	assert.InDelta(t, 2.0, Impedance(law, 7, p), 1e-12)
}

func TestValidate(t *testing.T) {
	var (
		law = QuadraticLaw{}
	)
	assert.NoError(t, MaterialParams{Rho: 1, K1: 5, K2: 1}.Validate(law, 2.1))
	// Non-positive density
	err := MaterialParams{Rho: 0, K1: 5, K2: 1}.Validate(law, 0)
	assert.ErrorIs(t, err, ErrInvalidMaterial)
	// Non-positive stress slope: dsig(-3) = 5 - 6 < 0, imaginary speed
	err = MaterialParams{Rho: 1, K1: 5, K2: 1}.Validate(law, -3)
	assert.ErrorIs(t, err, ErrInvalidMaterial)
}
