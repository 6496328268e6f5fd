package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pivotbench/quicksort"
)

// readDataFromFile 한 줄에 하나씩 읽기
func readDataFromFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data := []int{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		num, err := strconv.Atoi(line)
		if err != nil {
			return nil, err
		}
		data = append(data, num)
	}

	return data, scanner.Err()
}

func TestWriteDataToFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "data.txt")

	require.NoError(t, writeDataToFile([]int{3, -1, 2147483647}, filename))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "3\n-1\n2147483647\n", string(content))
}

func TestRunBenchmark(t *testing.T) {
	data := []int{5, 4, 3, 2, 1, 5, 4, 3, 2, 1, 5, 4, 3, 2, 1, 5, 4, 3, 2, 1, 5, 4, 3, 2, 1}

	result, sorted, err := runBenchmark(quicksort.MedianOfThree, data)
	require.NoError(t, err)
	assert.Equal(t, 25, result.DataSize)
	assert.GreaterOrEqual(t, result.Stats.Partitions, 1)
	assert.Equal(t, 5, data[0])
	assert.Equal(t, 1, sorted[0])
	assert.Equal(t, 5, sorted[24])
}
