package positions

import (
	"fmt"
	"math"
	"strings"
)

type OptionKind int

const (
	Call OptionKind = iota
	Put
)

func (k OptionKind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

func (k OptionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *OptionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseOptionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func ParseOptionKind(s string) (OptionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("unknown option kind %q", s)
}

// CallPayoff is max(S - K, 0).
func CallPayoff(s, k float64) float64 {
	return math.Max(s-k, 0)
}

// PutPayoff is max(K - S, 0).
func PutPayoff(s, k float64) float64 {
	return math.Max(k-s, 0)
}

func Payoff(kind OptionKind, s, k float64) float64 {
	if kind == Call {
		return CallPayoff(s, k)
	}
	return PutPayoff(s, k)
}
