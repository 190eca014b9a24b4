package burndown

import "math"

// dedupe keeps the last point for every timestamp and preserves the order in
// which the surviving points first appear from the end.
func dedupe(points []Point) []Point {
	seen := make(map[int64]struct{}, len(points))
	kept := make([]Point, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		key := points[i].Timestamp.UnixNano()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, points[i])
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

func normalize(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{Timestamp: p.Timestamp, Remaining: round(p.Remaining)}
	}
	return out
}

// round rounds to one decimal place and floors at zero.
func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r := math.Round(v*10) / 10
	if r < 0 {
		return 0
	}
	return r
}
