package forecast

import "context"

// DailyQuantiles is one day of the numeric oracle's output distribution.
type DailyQuantiles struct {
	Median float64
	P10    float64
	P90    float64
}

// Oracle is the numeric time-series forecaster. It runs in-process and is
// assumed available; an error fails the whole request.
type Oracle interface {
	Predict(ctx context.Context, history []float64, horizon int) ([]DailyQuantiles, error)
}

// MovingAverageOracle is the in-process forecaster: a weighted moving
// average over the most recent week, extended with the recent linear
// drift, with a proportional quantile band.
type MovingAverageOracle struct{}

func NewMovingAverageOracle() *MovingAverageOracle {
	return &MovingAverageOracle{}
}

func (o *MovingAverageOracle) Predict(ctx context.Context, history []float64, horizon int) ([]DailyQuantiles, error) {
	if len(history) == 0 {
		history = []float64{0}
	}

	window := history
	if len(window) > 7 {
		window = window[len(window)-7:]
	}

	// Recency-weighted level
	var sum, weight float64
	for i, v := range window {
		w := float64(i + 1)
		sum += v * w
		weight += w
	}
	level := sum / weight

	// Drift between the halves of the window, spread per day
	var drift float64
	if len(window) >= 4 {
		half := len(window) / 2
		var older, newer float64
		for _, v := range window[:half] {
			older += v
		}
		for _, v := range window[len(window)-half:] {
			newer += v
		}
		drift = (newer - older) / float64(half) / float64(half)
	}

	out := make([]DailyQuantiles, 0, horizon)
	for day := 1; day <= horizon; day++ {
		median := level + drift*float64(day)
		if median < 0 {
			median = 0
		}
		out = append(out, DailyQuantiles{
			Median: median,
			P10:    median * 0.8,
			P90:    median * 1.2,
		})
	}

	return out, nil
}
