package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"

	"pivotbench/quicksort"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

// run 종료 코드 반환 (실패 종류와 관계없이 1)
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, getenv, stderr)
	switch {
	case errors.Is(err, errUsage):
		return 1
	case errors.Is(err, errSizeNotInt):
		fmt.Fprintln(stderr, "Array size must be an integer.")
		return 1
	case errors.Is(err, quicksort.ErrInvalidArgument):
		fmt.Fprintf(stderr, "Invalid argument: %v\n", err)
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "Unknown error: %v\n", err)
		return 1
	}

	var out io.Writer = io.Discard
	if cfg.verbose {
		out = stderr
	}
	log := logger.NewWriter("ns=pivotbench", out)

	if err := benchmark(cfg, log); err != nil {
		switch {
		case errors.Is(err, quicksort.ErrInvalidArgument):
			fmt.Fprintf(stderr, "Invalid argument: %v\n", err)
		case errors.Is(err, errFileWrite):
			fmt.Fprintf(stderr, "File writing error: %v\n", err)
		default:
			fmt.Fprintf(stderr, "Unknown error: %v\n", err)
		}
		return 1
	}

	fmt.Fprintln(stdout, "Completed sorting. The results are saved to output files.")
	return 0
}

// benchmark 데이터 생성, 전략별 정렬, 결과 파일 저장
func benchmark(cfg config, log *logger.Logger) error {
	started := time.Now()

	var opts []quicksort.Option
	if cfg.seeded {
		// 생성과 모든 정렬이 같은 난수 생성기를 공유
		opts = append(opts, quicksort.WithRand(quicksort.NewRand(cfg.seed)))
	}

	data, err := quicksort.GenerateRandom(cfg.size, opts...)
	if err != nil {
		return log.At("generate").Error(err)
	}
	log.At("generate").Logf("size=%s seeded=%t", humanize.Comma(int64(len(data))), cfg.seeded)

	if err := writeDataToFile(data, cfg.unsortedPath); err != nil {
		return errors.Wrapf(err, "write %s", cfg.unsortedPath)
	}

	rep := newReport(cfg.size)
	var results []BenchmarkResult
	var sortedOut []int

	for _, strategy := range strategiesFor(cfg, data) {
		result, sorted, err := runBenchmark(strategy, data, opts...)
		if err != nil {
			return log.At("sort").Error(err)
		}
		log.At("sort").Logf("strategy=%s elapsed=%s alloc=%s partitions=%d insertion_runs=%d max_depth=%d",
			strategy, result.Duration, humanize.Bytes(result.MemoryUsage),
			result.Stats.Partitions, result.Stats.InsertionRuns, result.Stats.MaxDepth)

		rep.add(result)
		results = append(results, result)

		// 정렬 결과는 하나만 저장 (MedianOfThree 실행분 우선)
		if sortedOut == nil || strategy == quicksort.MedianOfThree {
			sortedOut = sorted
		}
	}

	// 빈 입력은 정렬 없이 빈 파일과 크기 한 줄짜리 리포트만 남긴다
	if sortedOut == nil {
		sortedOut = data
	}
	if err := writeDataToFile(sortedOut, cfg.sortedPath); err != nil {
		return errors.Wrapf(err, "write %s", cfg.sortedPath)
	}

	if err := rep.save(cfg.reportPath); err != nil {
		return errors.Wrapf(err, "write %s", cfg.reportPath)
	}

	if cfg.metricsPath != "" {
		if err := writeMetrics(cfg.metricsPath, cfg.size, results); err != nil {
			return err
		}
	}

	if cfg.historyPath != "" {
		if err := recordHistory(cfg, log, newRecord(started, cfg, data, results)); err != nil {
			return err
		}
	}

	log.Successf("strategies=%d", len(results))
	return nil
}

func strategiesFor(cfg config, data []int) []quicksort.Strategy {
	if len(data) == 0 {
		return nil
	}
	return cfg.strategies
}
