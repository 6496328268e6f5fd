package main

import (
	"bufio"
	"encoding/binary"
	"os"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"

	"pivotbench/kvdb"
	"pivotbench/quicksort"
)

// errFileWrite 출력 파일 쓰기 실패
var errFileWrite = errors.New("file writing error")

// BenchmarkResult 전략 하나의 벤치마크 결과
type BenchmarkResult struct {
	Strategy    quicksort.Strategy
	DataSize    int
	Duration    time.Duration
	MemoryUsage uint64
	Stats       quicksort.Stats
}

func (r BenchmarkResult) record() kvdb.Result {
	return kvdb.Result{
		Strategy:      r.Strategy.String(),
		Duration:      r.Duration,
		MemoryUsage:   r.MemoryUsage,
		Partitions:    r.Stats.Partitions,
		InsertionRuns: r.Stats.InsertionRuns,
		MaxDepth:      r.Stats.MaxDepth,
	}
}

// SystemStats 메모리 통계
type SystemStats struct {
	startMem runtime.MemStats
	endMem   runtime.MemStats
}

// startStats 측정 시작
func startStats() *SystemStats {
	runtime.GC() // 가비지 컬렉션으로 정확한 측정

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{startMem: m}
}

// endStats 할당된 바이트 수
func (s *SystemStats) endStats() uint64 {
	runtime.ReadMemStats(&s.endMem)
	return s.endMem.TotalAlloc - s.startMem.TotalAlloc
}

// runBenchmark 원본 복사본을 strategy 로 정렬, 결과와 정렬된 복사본 반환
func runBenchmark(strategy quicksort.Strategy, data []int, opts ...quicksort.Option) (BenchmarkResult, []int, error) {
	result := BenchmarkResult{Strategy: strategy, DataSize: len(data)}

	testData := make([]int, len(data))
	copy(testData, data)

	stats := startStats()

	sortOpts := append(slices.Clone(opts), quicksort.WithStats(&result.Stats))

	duration, err := quicksort.Sort(testData, strategy, sortOpts...)
	if err != nil {
		return result, nil, errors.Wrapf(err, "sort with %s", strategy)
	}

	result.MemoryUsage = stats.endStats()
	result.Duration = duration

	if !slices.IsSorted(testData) {
		return result, nil, errors.AssertionFailedf("%s produced unsorted output", strategy)
	}

	return result, testData, nil
}

// fingerprint 입력 데이터의 xxhash (기록 비교용)
func fingerprint(data []int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// writeDataToFile 한 줄에 하나씩 쓰기
func writeDataToFile(data []int, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Mark(err, errFileWrite)
	}
	defer file.Close()

	// 큰 버퍼 사용으로 I/O 성능 향상
	writer := bufio.NewWriterSize(file, 64*1024)

	var buf []byte
	for _, num := range data {
		buf = strconv.AppendInt(buf[:0], int64(num), 10)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return errors.Mark(err, errFileWrite)
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Mark(err, errFileWrite)
	}
	return errors.Mark(file.Close(), errFileWrite)
}
