package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// report 타이밍 리포트 (Array Size 한 줄 + 전략별 한 줄)
type report struct {
	size    int
	results []BenchmarkResult
}

func newReport(size int) *report {
	return &report{size: size}
}

func (r *report) add(result BenchmarkResult) {
	r.results = append(r.results, result)
}

func (r *report) String() string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Array Size = %d\n", r.size))
	for _, result := range r.results {
		builder.WriteString(fmt.Sprintf("%s : %v\n", result.Strategy, result.Duration))
	}
	return builder.String()
}

// save 파일로 저장
func (r *report) save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Mark(err, errFileWrite)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(r.String()); err != nil {
		return errors.Mark(err, errFileWrite)
	}
	if err := writer.Flush(); err != nil {
		return errors.Mark(err, errFileWrite)
	}
	return errors.Mark(file.Close(), errFileWrite)
}
