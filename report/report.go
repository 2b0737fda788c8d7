package report

import (
	"fmt"
	"io"

	"github.com/bcdannyboy/gbmc/positions"
	"github.com/bcdannyboy/gbmc/probability"
	"github.com/xhhuango/json"
)

// Text writes the two-line price summary.
func Text(w io.Writer, call, put probability.Result) error {
	if _, err := fmt.Fprintf(w, "European Call Option Price: %v\n", call.Price); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "European Put Option Price: %v\n", put.Price)
	return err
}

type Parameters struct {
	S0             float64 `json:"s0"`
	Strike         float64 `json:"strike"`
	Rate           float64 `json:"rate"`
	Sigma          float64 `json:"sigma"`
	Maturity       float64 `json:"maturity"`
	NumSimulations int     `json:"num_simulations"`
	Seed           uint64  `json:"seed"`
}

type Estimate struct {
	probability.Result
	Reference positions.BSMResult `json:"black_scholes"`
}

type Summary struct {
	Parameters Parameters `json:"parameters"`
	Call       Estimate   `json:"call"`
	Put        Estimate   `json:"put"`
}

// NewSummary pairs each Monte Carlo estimate with its closed-form reference.
func NewSummary(params probability.Params, seed uint64, call, put probability.Result) Summary {
	reference := func(kind positions.OptionKind) positions.BSMResult {
		return positions.CalculateBSM(params.S0, params.K, params.R, params.Sigma, params.T, kind)
	}

	return Summary{
		Parameters: Parameters{
			S0:             params.S0,
			Strike:         params.K,
			Rate:           params.R,
			Sigma:          params.Sigma,
			Maturity:       params.T,
			NumSimulations: params.NumSimulations,
			Seed:           seed,
		},
		Call: Estimate{Result: call, Reference: reference(positions.Call)},
		Put:  Estimate{Result: put, Reference: reference(positions.Put)},
	}
}

func JSON(w io.Writer, summary Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
