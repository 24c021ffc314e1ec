// Package progress maps the playback position of a user onto the segmented
// indicator drawn above the story.
package progress

// Segments returns one fill value in [0, 1] per story. Stories before the
// active index are full, the active one shows the timeline value and the
// rest are empty. When the user is not the active one, value is ignored and
// the active story renders empty.
func Segments(activeIndex int, value float64, count int, active bool) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = Fill(i, activeIndex, value, active)
	}
	return out
}

// Fill computes the fill of a single segment.
func Fill(index, activeIndex int, value float64, active bool) float64 {
	switch {
	case index < activeIndex:
		return 1
	case index > activeIndex:
		return 0
	case !active:
		return 0
	default:
		return clamp(value)
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
