package mosaic

import (
	"math"

	"github.com/studworks/brixel/internal/palette"
)

// QuantizationStats summarizes how faithfully the palette covers the
// source colors. Distances are the HSL metric used for matching, rounded
// to two decimals.
type QuantizationStats struct {
	Distinct     int     `json:"distinct_colors"`
	Mapped       int     `json:"palette_colors"`
	MeanDistance float64 `json:"mean_distance"`
	MaxDistance  float64 `json:"max_distance"`
}

// Stats computes fidelity numbers over the quantizer's filter: the
// distinct source color count, how many palette entries they collapsed
// onto, and the mean and worst match distance.
func Stats(q *palette.Quantizer) QuantizationStats {
	mappings := q.Mappings()
	if len(mappings) == 0 {
		return QuantizationStats{}
	}

	targets := make(map[int]bool)
	var sum, worst float64
	for _, m := range mappings {
		targets[m.To.ID] = true
		d := m.From.Opaque().Distance(m.To.Color)
		sum += d
		if d > worst {
			worst = d
		}
	}

	return QuantizationStats{
		Distinct:     len(mappings),
		Mapped:       len(targets),
		MeanDistance: math.Round(sum/float64(len(mappings))*100) / 100,
		MaxDistance:  math.Round(worst*100) / 100,
	}
}
