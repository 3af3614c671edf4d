package stats

import "sort"

type ModeKind int

const (
	// NoMode means every distinct value occurs equally often.
	NoMode ModeKind = iota
	Unimodal
	Multimodal
)

func (k ModeKind) String() string {
	switch k {
	case Unimodal:
		return "unimodal"
	case Multimodal:
		return "multimodal"
	default:
		return "no mode"
	}
}

// Mode is the most frequent value, or values, of a sample. Values is empty
// for NoMode and sorted ascending otherwise.
type Mode struct {
	Kind   ModeKind
	Values []float64
}

// ModeOf reports NoMode only when all distinct values share the highest
// frequency, which includes samples where every value is distinct and
// samples holding a single repeated value.
func ModeOf(sample []float64) (Mode, error) {
	if len(sample) == 0 {
		return Mode{}, ErrEmptyInput
	}
	frequency := make(map[float64]int, len(sample))
	maxFreq := 0
	for _, v := range sample {
		frequency[v]++
		if frequency[v] > maxFreq {
			maxFreq = frequency[v]
		}
	}

	var modes []float64
	for v, f := range frequency {
		if f == maxFreq {
			modes = append(modes, v)
		}
	}
	if len(modes) == len(frequency) {
		return Mode{Kind: NoMode}, nil
	}
	sort.Float64s(modes)
	if len(modes) == 1 {
		return Mode{Kind: Unimodal, Values: modes}, nil
	}
	return Mode{Kind: Multimodal, Values: modes}, nil
}
