package main

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/convox/logger"
	"github.com/dustin/go-humanize"

	"pivotbench/kvdb"
)

// recordHistory 이전 기록과 비교해 로그를 남기고 이번 실행을 저장
func recordHistory(cfg config, log *logger.Logger, rec kvdb.Record) error {
	log = log.At("history").Start()

	store, err := kvdb.Open(cfg.backend, cfg.historyPath)
	if err != nil {
		return log.Error(err)
	}
	defer store.Close()

	prior, err := store.List()
	if err != nil {
		return log.Error(errors.Wrap(err, "list history"))
	}

	best := kvdb.BestDurations(prior, rec.Size)
	for _, r := range rec.Results {
		previous, ok := best[r.Strategy]
		if !ok {
			log.Logf("strategy=%s elapsed=%s best=none", r.Strategy, r.Duration)
			continue
		}
		log.Logf("strategy=%s elapsed=%s best=%s improved=%t", r.Strategy, r.Duration, previous, r.Duration < previous)
	}

	if err := store.Put(rec); err != nil {
		return log.Error(errors.Wrap(err, "put history"))
	}

	log.Successf("backend=%s runs=%s", cfg.backend, humanize.Comma(int64(len(prior)+1)))
	return nil
}

func newRecord(started time.Time, cfg config, data []int, results []BenchmarkResult) kvdb.Record {
	rec := kvdb.Record{
		Time:        started,
		Size:        len(data),
		Fingerprint: fingerprint(data),
	}
	if cfg.seeded {
		rec.Seed = cfg.seed
	}
	for _, r := range results {
		rec.Results = append(rec.Results, r.record())
	}
	return rec
}
