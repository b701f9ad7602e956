package risk

import (
	"btctreasury/internal/domain"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// ComputePathStatistics describes the terminal prices of paths and copies
// out up to maxSamplePaths of them for charting.
func ComputePathStatistics(paths [][]float64, initialPrice float64, maxSamplePaths int) (*domain.PathStatistics, error) {
	if len(paths) == 0 {
		return nil, domain.InvalidInputError{Field: "paths", Reason: "must not be empty"}
	}

	terminal := make([]float64, len(paths))
	for i, p := range paths {
		terminal[i] = p[len(p)-1]
	}
	sort.Float64s(terminal)

	mean, err := stats.Mean(terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean terminal price: %w", err)
	}
	std, err := stats.StandardDeviationPopulation(terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to compute terminal price std: %w", err)
	}

	samples := [][]float64{}
	for i := 0; i < len(paths) && i < maxSamplePaths; i++ {
		samples = append(samples, append([]float64{}, paths[i]...))
	}

	return &domain.PathStatistics{
		InitialPrice: initialPrice,
		Mean:         mean,
		Median:       Percentile(terminal, 50),
		Std:          std,
		Min:          terminal[0],
		Max:          terminal[len(terminal)-1],
		P5:           Percentile(terminal, 5),
		P25:          Percentile(terminal, 25),
		P75:          Percentile(terminal, 75),
		P95:          Percentile(terminal, 95),
		SamplePaths:  samples,
	}, nil
}
