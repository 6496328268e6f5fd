package main

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"pivotbench/kvdb"
	"pivotbench/quicksort"
)

const usage = "Usage: pivotbench [flags] <arraySize> <reportFile> <unsortedFile> <sortedFile>"

var (
	errUsage      = errors.New("usage")
	errSizeNotInt = errors.New("array size must be an integer")
)

// 값을 받는 플래그 (음수 크기 인자 구분용)
var valueFlags = map[string]bool{"seed": true, "history": true, "backend": true, "metrics": true, "strategies": true}

// config 실행 설정 (플래그 > 환경 변수 > 기본값)
type config struct {
	size         int
	reportPath   string
	unsortedPath string
	sortedPath   string

	seed   uint64
	seeded bool

	historyPath string
	backend     kvdb.Backend
	metricsPath string
	verbose     bool

	strategies []quicksort.Strategy
}

func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("pivotbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}

	seed := fs.String("seed", getenv("PIVOTBENCH_SEED"), "random seed for a reproducible run")
	fs.StringVar(&cfg.historyPath, "history", getenv("PIVOTBENCH_HISTORY"), "path of the run history store")
	backend := fs.String("backend", envOr(getenv, "PIVOTBENCH_BACKEND", string(kvdb.Bbolt)), "history backend: bbolt, badger or pebble")
	fs.StringVar(&cfg.metricsPath, "metrics", getenv("PIVOTBENCH_METRICS"), "write prometheus text metrics to this file")
	fs.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	strategies := fs.String("strategies", getenv("PIVOTBENCH_STRATEGIES"), "comma separated pivot strategies to run (default all)")

	if err := fs.Parse(guardNegativeSize(args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, errUsage
		}
		return cfg, errors.Mark(err, errUsage)
	}

	if fs.NArg() != 4 {
		fs.Usage()
		return cfg, errUsage
	}

	// int32 범위 밖의 크기도 정수가 아닌 것으로 취급
	size, err := strconv.ParseInt(fs.Arg(0), 10, 32)
	if err != nil {
		return cfg, errors.Mark(errors.Wrapf(err, "parse %q", fs.Arg(0)), errSizeNotInt)
	}
	cfg.size = int(size)
	cfg.reportPath = fs.Arg(1)
	cfg.unsortedPath = fs.Arg(2)
	cfg.sortedPath = fs.Arg(3)

	if *seed != "" {
		cfg.seed, err = strconv.ParseUint(*seed, 10, 64)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid seed %q", *seed)
		}
		cfg.seeded = true
	}

	cfg.backend, err = kvdb.ParseBackend(*backend)
	if err != nil {
		return cfg, err
	}

	cfg.strategies, err = parseStrategies(*strategies)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// parseStrategies 빈 값이면 전체 전략, 중복은 한 번만
func parseStrategies(list string) ([]quicksort.Strategy, error) {
	if strings.TrimSpace(list) == "" {
		return quicksort.Strategies(), nil
	}

	var selected []quicksort.Strategy
	for _, name := range strings.Split(list, ",") {
		s, err := quicksort.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(selected, s) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

// guardNegativeSize "-5" 같은 음수 크기가 플래그로 해석되지 않도록 앞에 "--" 삽입
func guardNegativeSize(args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			return args
		}

		if _, err := strconv.Atoi(arg); err == nil {
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i]...)
			guarded = append(guarded, "--")
			return append(guarded, args[i:]...)
		}

		if valueFlags[strings.TrimLeft(arg, "-")] {
			i++
		}
	}
	return args
}
