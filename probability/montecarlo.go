package probability

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/bcdannyboy/gbmc/models"
	"github.com/bcdannyboy/gbmc/positions"
)

const DefaultProgressStep = 1000

var ErrInvalidParameter = errors.New("invalid parameter")

type Params struct {
	S0             float64 // Initial stock price
	K              float64 // Strike price
	R              float64 // Risk-free rate
	Sigma          float64 // Volatility
	T              float64 // Time to maturity in years
	NumSimulations int
	Kind           positions.OptionKind
}

func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"S0", p.S0}, {"K", p.K}, {"r", p.R}, {"sigma", p.Sigma}, {"T", p.T},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, f.name, f.value)
		}
	}

	switch {
	case p.NumSimulations < 1:
		return fmt.Errorf("%w: number of simulations must be at least 1, got %d", ErrInvalidParameter, p.NumSimulations)
	case p.S0 <= 0:
		return fmt.Errorf("%w: S0 must be positive, got %v", ErrInvalidParameter, p.S0)
	case p.K <= 0:
		return fmt.Errorf("%w: K must be positive, got %v", ErrInvalidParameter, p.K)
	case p.T < 0:
		return fmt.Errorf("%w: T must not be negative, got %v", ErrInvalidParameter, p.T)
	case p.Sigma < 0:
		return fmt.Errorf("%w: sigma must not be negative, got %v", ErrInvalidParameter, p.Sigma)
	case p.Kind != positions.Call && p.Kind != positions.Put:
		return fmt.Errorf("%w: unsupported option kind %v", ErrInvalidParameter, p.Kind)
	}
	return nil
}

type Result struct {
	Kind        positions.OptionKind `json:"kind"`
	Price       float64              `json:"price"`
	StdErr      float64              `json:"std_err"` // Discounted standard error of the mean, 0 for a single sample
	Simulations int                  `json:"simulations"`
}

// Pricer estimates European option prices from terminal GBM prices drawn
// through Noise. It holds no state of its own beyond the sampler, which is
// advanced by every simulation.
type Pricer struct {
	Noise models.Sampler

	// Progress, when set, receives the number of simulations completed since
	// the previous call, every ProgressStep simulations and once at the end.
	Progress     func(n int)
	ProgressStep int

	Logger *slog.Logger
}

func NewPricer(noise models.Sampler) *Pricer {
	return &Pricer{
		Noise:        noise,
		ProgressStep: DefaultProgressStep,
		Logger:       slog.Default(),
	}
}

// Price returns exp(-rT) times the mean payoff over params.NumSimulations draws.
func (p *Pricer) Price(params Params) (float64, error) {
	result, err := p.Estimate(params)
	if err != nil {
		return 0, err
	}
	return result.Price, nil
}

func (p *Pricer) Estimate(params Params) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	gbm := models.NewGeometricBrownianMotion(params.R, params.Sigma)
	n := params.NumSimulations
	step := p.ProgressStep
	if step <= 0 {
		step = DefaultProgressStep
	}

	// running sum for the price, Welford mean and M2 for the standard error
	var payoffSum, mean, m2 float64
	pending := 0

	for i := 0; i < n; i++ {
		sT := gbm.SimulatePrice(params.S0, params.T, p.Noise)
		payoff := positions.Payoff(params.Kind, sT, params.K)

		payoffSum += payoff
		delta := payoff - mean
		mean += delta / float64(i+1)
		m2 += delta * (payoff - mean)

		if p.Progress != nil {
			pending++
			if pending == step {
				p.Progress(pending)
				pending = 0
			}
		}
	}
	if p.Progress != nil && pending > 0 {
		p.Progress(pending)
	}

	discount := math.Exp(-params.R * params.T)
	result := Result{
		Kind:        params.Kind,
		Price:       discount * (payoffSum / float64(n)),
		Simulations: n,
	}
	if n > 1 {
		variance := math.Max(m2/float64(n-1), 0)
		result.StdErr = discount * math.Sqrt(variance/float64(n))
	}

	p.logger().Debug("monte carlo estimate",
		"kind", params.Kind.String(),
		"simulations", n,
		"price", result.Price,
		"std_err", result.StdErr,
	)

	return result, nil
}

func (p *Pricer) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
