package models

import "math"

type GeometricBrownianMotion struct {
	R     float64 // Risk-free rate
	Sigma float64 // Volatility
}

func NewGeometricBrownianMotion(r, sigma float64) *GeometricBrownianMotion {
	return &GeometricBrownianMotion{
		R:     r,
		Sigma: sigma,
	}
}

// TerminalPrice maps a standard normal draw z to the risk-neutral price at t.
// With t == 0 the diffusion term vanishes and s0 is returned unchanged.
func (g *GeometricBrownianMotion) TerminalPrice(s0, t, z float64) float64 {
	drift := (g.R - 0.5*g.Sigma*g.Sigma) * t
	diffusion := g.Sigma * math.Sqrt(t) * z
	return s0 * math.Exp(drift+diffusion)
}

// SimulatePrice draws a single terminal price from the sampler.
func (g *GeometricBrownianMotion) SimulatePrice(s0, t float64, noise Sampler) float64 {
	return g.TerminalPrice(s0, t, noise.Generate(0, 1))
}
