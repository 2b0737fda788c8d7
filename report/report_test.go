package report

import (
	"bytes"
	"testing"

	"github.com/bcdannyboy/gbmc/positions"
	"github.com/bcdannyboy/gbmc/probability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhhuango/json"
)

func TestText(t *testing.T) {
	var buf bytes.Buffer
	call := probability.Result{Kind: positions.Call, Price: 10.5}
	put := probability.Result{Kind: positions.Put, Price: 5.25}

	require.NoError(t, Text(&buf, call, put))
	assert.Equal(t, "European Call Option Price: 10.5\nEuropean Put Option Price: 5.25\n", buf.String())
}

func TestJSON(t *testing.T) {
	params := probability.Params{S0: 100, K: 100, R: 0.05, Sigma: 0.2, T: 1, NumSimulations: 1000}
	call := probability.Result{Kind: positions.Call, Price: 10.4, StdErr: 0.46, Simulations: 1000}
	put := probability.Result{Kind: positions.Put, Price: 5.6, StdErr: 0.27, Simulations: 1000}

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, NewSummary(params, 42, call, put)))

	var decoded struct {
		Parameters struct {
			S0             float64 `json:"s0"`
			NumSimulations int     `json:"num_simulations"`
			Seed           uint64  `json:"seed"`
		} `json:"parameters"`
		Call struct {
			Kind         string  `json:"kind"`
			Price        float64 `json:"price"`
			StdErr       float64 `json:"std_err"`
			BlackScholes struct {
				Price float64 `json:"price"`
				Delta float64 `json:"delta"`
			} `json:"black_scholes"`
		} `json:"call"`
		Put struct {
			Kind         string  `json:"kind"`
			Price        float64 `json:"price"`
			BlackScholes struct {
				Price float64 `json:"price"`
			} `json:"black_scholes"`
		} `json:"put"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 100.0, decoded.Parameters.S0)
	assert.Equal(t, 1000, decoded.Parameters.NumSimulations)
	assert.Equal(t, uint64(42), decoded.Parameters.Seed)

	assert.Equal(t, "call", decoded.Call.Kind)
	assert.Equal(t, 10.4, decoded.Call.Price)
	assert.Equal(t, 0.46, decoded.Call.StdErr)
	assert.InDelta(t, 10.4506, decoded.Call.BlackScholes.Price, 1e-4)
	assert.InDelta(t, 0.6368, decoded.Call.BlackScholes.Delta, 1e-4)

	assert.Equal(t, "put", decoded.Put.Kind)
	assert.Equal(t, 5.6, decoded.Put.Price)
	assert.InDelta(t, 5.5735, decoded.Put.BlackScholes.Price, 1e-4)
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)

	done := p.Track("call", 10)
	done.Add(4)
	done.Add(6)

	failed := p.Track("put", 10)
	failed.Abort()

	p.Wait()
	assert.Contains(t, buf.String(), "call")
}
