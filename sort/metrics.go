package main

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// writeMetrics 실행 결과를 prometheus textfile 형식으로 저장
func writeMetrics(filename string, size int, results []BenchmarkResult) error {
	registry := prometheus.NewRegistry()

	arraySize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pivotbench",
		Name:      "array_size",
		Help:      "Number of elements sorted in the run.",
	})
	duration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pivotbench",
		Name:      "sort_duration_seconds",
		Help:      "Wall-clock time of one sort per pivot strategy.",
	}, []string{"strategy"})
	partitions := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pivotbench",
		Name:      "sort_partitions",
		Help:      "Partition steps executed per pivot strategy.",
	}, []string{"strategy"})
	depth := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pivotbench",
		Name:      "sort_max_depth",
		Help:      "Maximum recursion depth per pivot strategy.",
	}, []string{"strategy"})

	registry.MustRegister(arraySize, duration, partitions, depth)

	arraySize.Set(float64(size))
	for _, r := range results {
		name := r.Strategy.String()
		duration.WithLabelValues(name).Set(r.Duration.Seconds())
		partitions.WithLabelValues(name).Set(float64(r.Stats.Partitions))
		depth.WithLabelValues(name).Set(float64(r.Stats.MaxDepth))
	}

	if err := prometheus.WriteToTextfile(filename, registry); err != nil {
		return errors.Mark(errors.Wrap(err, "write metrics"), errFileWrite)
	}
	return nil
}
