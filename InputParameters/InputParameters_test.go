package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var (
		fileInput = `
Title: "Stiff-to-soft interface"
Left:  {Strain: 2.1, Momentum: 0}
Right: {Strain: 0.0, Momentum: 0}
LeftMaterial:  {Rho: 1, K1: 5, K2: 1}
RightMaterial: {Rho: 1, K1: 2, K2: 1}
`
		ip = &RiemannInput{}
	)
	err := ip.Parse([]byte(fileInput))
	assert.NoError(t, err)
	assert.Equal(t, "Stiff-to-soft interface", ip.Title)
	assert.Equal(t, 2.1, ip.Left.Strain)
	assert.Equal(t, 0.0, ip.Right.Strain)
	assert.Equal(t, 5.0, ip.LeftMaterial.K1)
	assert.Equal(t, 2.0, ip.RightMaterial.K1)

	ql, qr := ip.States()
	assert.Equal(t, 2.1, ql.Strain)
	assert.Equal(t, 0.0, qr.Momentum)
	auxl, auxr := ip.Materials()
	assert.Equal(t, 1.0, auxl.Rho)
	assert.Equal(t, 1.0, auxr.K2)
}

func TestDefault(t *testing.T) {
	ip := Default()
	assert.NotEmpty(t, ip.Title)
	auxl, auxr := ip.Materials()
	assert.Greater(t, auxl.Rho, 0.0)
	assert.Greater(t, auxr.Rho, 0.0)
	assert.NotEqual(t, auxl, auxr)
}
