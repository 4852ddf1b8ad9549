package Bench

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// Kind of key stream fed to the engines.
type Kind string

const (
	Ascending  Kind = "ascending"
	Descending Kind = "descending"
	Uniform    Kind = "uniform"
	Skewed     Kind = "skewed"
)

// skewExponent bends uniform draws towards 0: a quarter of the keys fall
// below maxValue/64.
const skewExponent = 3

func Kinds() []Kind {
	return []Kind{Ascending, Descending, Uniform, Skewed}
}

func (k Kind) Valid() bool {
	return slices.Contains(Kinds(), k)
}

// Generate n keys in [0, maxValue) of the given kind. The same seed gives the
// same keys. Ascending and descending streams are sorted uniform draws, so
// they may repeat keys like the others.
func Generate(kind Kind, n, maxValue int, seed uint64) ([]int, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown dataset kind %q", kind)
	}
	if n < 0 || maxValue <= 0 {
		return nil, fmt.Errorf("invalid dataset shape: n=%d, max=%d", n, maxValue)
	}
	r := rand.New(rand.NewPCG(seed, seed))
	data := make([]int, n)
	for i := range data {
		if kind == Skewed {
			data[i] = int(float64(maxValue) * math.Pow(r.Float64(), skewExponent))
		} else {
			data[i] = r.IntN(maxValue)
		}
	}
	switch kind {
	case Ascending:
		slices.Sort(data)
	case Descending:
		slices.Sort(data)
		slices.Reverse(data)
	}
	return data, nil
}
