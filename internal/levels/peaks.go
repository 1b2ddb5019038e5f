package levels

import "sort"

// findPeaks locates local maxima of values, filters them by prominence and
// enforces a minimum index spacing. Higher peaks win when two candidates
// fall within distance of each other. The returned indices are ascending.
func findPeaks(values []float64, distance int, minProminence float64) []int {
	var candidates []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			candidates = append(candidates, i)
		}
	}

	var kept []int
	for _, idx := range candidates {
		if prominence(values, idx) >= minProminence {
			kept = append(kept, idx)
		}
	}

	if distance > 1 {
		kept = enforceDistance(values, kept, distance)
	}
	sort.Ints(kept)
	return kept
}

// findTroughs locates local minima by negating the input.
func findTroughs(values []float64, distance int, minProminence float64) []int {
	neg := make([]float64, len(values))
	for i, v := range values {
		neg[i] = -v
	}
	return findPeaks(neg, distance, minProminence)
}

// prominence measures how much a peak stands out: its height above the
// higher of the two lowest points separating it from higher ground on each
// side (or the array edge when no higher value exists).
func prominence(values []float64, peak int) float64 {
	height := values[peak]

	leftBase := height
	for i := peak - 1; i >= 0; i-- {
		if values[i] > height {
			break
		}
		if values[i] < leftBase {
			leftBase = values[i]
		}
	}

	rightBase := height
	for i := peak + 1; i < len(values); i++ {
		if values[i] > height {
			break
		}
		if values[i] < rightBase {
			rightBase = values[i]
		}
	}

	base := leftBase
	if rightBase > base {
		base = rightBase
	}
	return height - base
}

// enforceDistance greedily keeps the highest peaks, dropping any candidate
// closer than distance bars to an already kept one.
func enforceDistance(values []float64, peaks []int, distance int) []int {
	byHeight := make([]int, len(peaks))
	copy(byHeight, peaks)
	sort.Slice(byHeight, func(i, j int) bool {
		if values[byHeight[i]] != values[byHeight[j]] {
			return values[byHeight[i]] > values[byHeight[j]]
		}
		return byHeight[i] < byHeight[j]
	})

	var kept []int
	for _, idx := range byHeight {
		ok := true
		for _, k := range kept {
			d := idx - k
			if d < 0 {
				d = -d
			}
			if d < distance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, idx)
		}
	}
	return kept
}
