package patterns

import "chart-analysis/pkg/types"

// extremum is one local high or low on the close-price curve.
type extremum struct {
	index int
	price float64
}

// localMaxima returns strict local maxima of the closes, innermost bars
// only (the series edges never qualify).
func localMaxima(series types.Series) []extremum {
	var out []extremum
	for i := 1; i < len(series)-1; i++ {
		if series[i].Close > series[i-1].Close && series[i].Close > series[i+1].Close {
			out = append(out, extremum{index: i, price: series[i].Close})
		}
	}
	return out
}

// localMinima returns strict local minima of the closes.
func localMinima(series types.Series) []extremum {
	var out []extremum
	for i := 1; i < len(series)-1; i++ {
		if series[i].Close < series[i-1].Close && series[i].Close < series[i+1].Close {
			out = append(out, extremum{index: i, price: series[i].Close})
		}
	}
	return out
}

// linreg fits y = slope*x + intercept by least squares with x = 0..n-1.
func linreg(values []float64) (slope, intercept float64) {
	n := float64(len(values))
	if len(values) < 2 {
		if len(values) == 1 {
			return 0, values[0]
		}
		return 0, 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
