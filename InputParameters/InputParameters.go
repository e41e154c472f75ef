package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/elastic1d/elasticity"
)

// Parameters obtained from the YAML input file: one Riemann problem, a
// left/right state pair and the material on each side of x=0.
type RiemannInput struct {
	Title         string        `yaml:"Title"`
	Left          StateInput    `yaml:"Left"`
	Right         StateInput    `yaml:"Right"`
	LeftMaterial  MaterialInput `yaml:"LeftMaterial"`
	RightMaterial MaterialInput `yaml:"RightMaterial"`
}

type StateInput struct {
	Strain   float64 `yaml:"Strain"`
	Momentum float64 `yaml:"Momentum"`
}

type MaterialInput struct {
	Rho float64 `yaml:"Rho"`
	K1  float64 `yaml:"K1"`
	K2  float64 `yaml:"K2"`
}

func (ip *RiemannInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *RiemannInput) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("(%8.5f, %8.5f)\t= Left (Strain, Momentum)\n", ip.Left.Strain, ip.Left.Momentum)
	fmt.Printf("(%8.5f, %8.5f)\t= Right (Strain, Momentum)\n", ip.Right.Strain, ip.Right.Momentum)
	fmt.Printf("(%g, %g, %g)\t\t= Left Material (Rho, K1, K2)\n",
		ip.LeftMaterial.Rho, ip.LeftMaterial.K1, ip.LeftMaterial.K2)
	fmt.Printf("(%g, %g, %g)\t\t= Right Material (Rho, K1, K2)\n",
		ip.RightMaterial.Rho, ip.RightMaterial.K1, ip.RightMaterial.K2)
}

func (ip *RiemannInput) States() (ql, qr elasticity.State) {
	ql = elasticity.State{Strain: ip.Left.Strain, Momentum: ip.Left.Momentum}
	qr = elasticity.State{Strain: ip.Right.Strain, Momentum: ip.Right.Momentum}
	return
}

func (ip *RiemannInput) Materials() (auxl, auxr elasticity.MaterialParams) {
	auxl = elasticity.MaterialParams{Rho: ip.LeftMaterial.Rho, K1: ip.LeftMaterial.K1, K2: ip.LeftMaterial.K2}
	auxr = elasticity.MaterialParams{Rho: ip.RightMaterial.Rho, K1: ip.RightMaterial.K1, K2: ip.RightMaterial.K2}
	return
}

// Default is the stiff-to-soft interface demo problem: a stretched stiff
// material releasing into a softer one at rest.
func Default() *RiemannInput {
	return &RiemannInput{
		Title:         "Stiff-to-soft interface",
		Left:          StateInput{Strain: 2.1, Momentum: 0},
		Right:         StateInput{Strain: 0, Momentum: 0},
		LeftMaterial:  MaterialInput{Rho: 1, K1: 5, K2: 1},
		RightMaterial: MaterialInput{Rho: 1, K1: 2, K2: 1},
	}
}
