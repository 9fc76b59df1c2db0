package metrics

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the search metrics of one algorithm.
type Summary struct {
	Algorithm    string
	Searches     int
	MeanNodes    float64
	StdDevNodes  float64
	MeanPrunes   float64
	MeanDuration float64 // microseconds
}

// Summarize groups metrics by algorithm, in order of first appearance.
func Summarize(searches []SearchMetric) []Summary {
	var order []string
	grouped := map[string][]SearchMetric{}
	for _, m := range searches {
		if _, ok := grouped[m.Algorithm]; !ok {
			order = append(order, m.Algorithm)
		}
		grouped[m.Algorithm] = append(grouped[m.Algorithm], m)
	}

	summaries := make([]Summary, 0, len(order))
	for _, algorithm := range order {
		group := grouped[algorithm]
		nodes := make([]float64, len(group))
		prunes := make([]float64, len(group))
		durations := make([]float64, len(group))
		for i, m := range group {
			nodes[i] = float64(m.Nodes)
			prunes[i] = float64(m.Prunes)
			durations[i] = float64(m.Duration.Microseconds())
		}

		summary := Summary{
			Algorithm:    algorithm,
			Searches:     len(group),
			MeanNodes:    stat.Mean(nodes, nil),
			MeanPrunes:   stat.Mean(prunes, nil),
			MeanDuration: stat.Mean(durations, nil),
		}
		if len(group) > 1 {
			summary.StdDevNodes = stat.StdDev(nodes, nil)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
