package puzzle

import "fmt"

// Method selects the feature representation and cost model used to score
// tile adjacency.
type Method int

const (
	// Gradient compares Sobel gradient magnitude across touching edges.
	// Good at connecting lines and contours that cross tile boundaries.
	Gradient Method = iota
	// Color compares borders in the perceptually uniform LAB color space.
	Color
	// Raw compares raw RGB channel values. Baseline quality, kept as the
	// shared fallback representation.
	Raw
	// Baseline performs no matching at all: tiles are placed in load
	// order. Used as a control when comparing the other methods.
	Baseline
)

func (m Method) String() string {
	switch m {
	case Gradient:
		return "gradient"
	case Color:
		return "color"
	case Raw:
		return "raw"
	case Baseline:
		return "baseline"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Methods returns every reconstruction method in a fixed order.
func Methods() []Method {
	return []Method{Gradient, Color, Raw, Baseline}
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
