package positions

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

type BSMResult struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// BlackScholesPrice is the closed-form European price under the same
// dynamics the Monte Carlo pricer samples from.
func BlackScholesPrice(s, k, r, sigma, t float64, kind OptionKind) float64 {
	return CalculateBSM(s, k, r, sigma, t, kind).Price
}

// CalculateBSM returns the price and first-order Greeks. When sigma or t is
// zero the terminal price is deterministic and only Price, Delta and Rho are
// populated.
func CalculateBSM(s, k, r, sigma, t float64, kind OptionKind) BSMResult {
	discount := math.Exp(-r * t)
	if sigma == 0 || t == 0 {
		return deterministicBSM(s, k, t, discount, kind)
	}

	sqrtT := math.Sqrt(t)
	d1 := (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT

	var result BSMResult
	if kind == Call {
		result.Price = s*normCDF(d1) - k*discount*normCDF(d2)
		result.Delta = normCDF(d1)
		result.Theta = -(s*normPDF(d1)*sigma)/(2*sqrtT) - r*k*discount*normCDF(d2)
		result.Rho = k * t * discount * normCDF(d2)
	} else {
		result.Price = k*discount*normCDF(-d2) - s*normCDF(-d1)
		result.Delta = normCDF(d1) - 1
		result.Theta = -(s*normPDF(d1)*sigma)/(2*sqrtT) + r*k*discount*normCDF(-d2)
		result.Rho = -k * t * discount * normCDF(-d2)
	}

	result.Gamma = normPDF(d1) / (s * sigma * sqrtT)
	result.Vega = s * normPDF(d1) * sqrtT

	return result
}

func deterministicBSM(s, k, t, discount float64, kind OptionKind) BSMResult {
	forward := s - k*discount
	if kind == Put {
		forward = -forward
	}
	if forward <= 0 {
		return BSMResult{}
	}

	result := BSMResult{Price: forward}
	if kind == Call {
		result.Delta = 1
		result.Rho = k * t * discount
	} else {
		result.Delta = -1
		result.Rho = -k * t * discount
	}
	return result
}

func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

func normPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
