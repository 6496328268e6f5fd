package quicksort

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"time"
)

// insertionThreshold 이 크기 미만의 구간은 삽입정렬 사용
const insertionThreshold = 20

// Sort 퀵소트 (하이브리드 접근), 정렬에 걸린 시간 반환
func Sort[E cmp.Ordered](data []E, strategy Strategy, opts ...Option) (time.Duration, error) {
	return SortFunc(data, strategy, cmp.Compare[E], opts...)
}

// SortFunc compare(a, b)의 3-way 비교 결과로 정렬
func SortFunc[E any](data []E, strategy Strategy, compare func(a, b E) int, opts ...Option) (time.Duration, error) {
	if data == nil {
		return 0, invalidArgument("input list cannot be nil")
	}
	if compare == nil {
		return 0, invalidArgument("compare function cannot be nil")
	}
	if !strategy.Valid() {
		return 0, invalidArgument("unsupported pivot strategy: %d", int(strategy))
	}

	o := buildOptions(opts)
	s := &sorter[E]{
		data:     data,
		compare:  compare,
		strategy: strategy,
		rng:      o.rng,
		stats:    o.stats,
	}
	if s.stats != nil {
		*s.stats = Stats{}
	}

	start := time.Now()
	s.quickSort(0, len(data)-1, 1)
	return time.Since(start), nil
}

type sorter[E any] struct {
	data     []E
	compare  func(a, b E) int
	strategy Strategy
	rng      *rand.Rand
	stats    *Stats
}

func (s *sorter[E]) quickSort(low, high, depth int) {
	// stats 는 WithStats 로 요청했을 때만 갱신
	if s.stats != nil && depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	for {
		// 작은 구간에는 삽입정렬 사용
		if high-low+1 < insertionThreshold {
			if s.stats != nil {
				s.stats.InsertionRuns++
			}
			insertionSort(s.data, low, high, s.compare)
			return
		}

		s.selectPivot(low, high)
		j := s.partition(low, high)
		if s.stats != nil {
			s.stats.Partitions++
		}

		// 꼬리 재귀 제거 (작은 쪽만 재귀, 큰 쪽은 루프)
		if j-low < high-j {
			s.quickSort(low, j-1, depth+1)
			low = j + 1
		} else {
			s.quickSort(j+1, high, depth+1)
			high = j - 1
		}
	}
}

// selectPivot 전략에 따라 고른 피벗을 low 위치로 이동
func (s *sorter[E]) selectPivot(low, high int) {
	switch s.strategy {
	case FirstElement:
	case RandomElement:
		r := low + s.rng.IntN(high-low+1)
		s.data[low], s.data[r] = s.data[r], s.data[low]
	case MedianOfThree:
		m := medianOfThree(s.data, low, (low+high)/2, high, s.compare)
		s.data[low], s.data[m] = s.data[m], s.data[low]
	default:
		// SortFunc 진입 시 검증하므로 도달 불가
		panic(fmt.Sprintf("quicksort: unsupported pivot strategy %d", int(s.strategy)))
	}
}

// partition 피벗(data[low]) 기준 Hoare 방식 분할, 피벗의 최종 위치 반환
func (s *sorter[E]) partition(low, high int) int {
	pivot := s.data[low]
	i, j := low+1, high

	for i <= j {
		for i <= j && s.compare(s.data[i], pivot) <= 0 {
			i++
		}
		for i <= j && s.compare(s.data[j], pivot) > 0 {
			j--
		}
		if i < j {
			s.data[i], s.data[j] = s.data[j], s.data[i]
			i++
			j--
		}
	}

	s.data[low], s.data[j] = s.data[j], s.data[low]
	return j
}

// medianOfThree a, b, c 인덱스 중 중앙값의 인덱스
// 동률이면 a, b, c 순서로 우선
func medianOfThree[E any](data []E, a, b, c int, compare func(x, y E) int) int {
	ab := sign(compare(data[a], data[b]))
	ac := sign(compare(data[a], data[c]))
	bc := sign(compare(data[b], data[c]))

	switch {
	case (ab <= 0 && ac >= 0) || (ab >= 0 && ac <= 0):
		return a
	case (ab >= 0 && bc >= 0) || (ab <= 0 && bc <= 0):
		return b
	default:
		return c
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// insertionSort data[low..high] 삽입정렬
func insertionSort[E any](data []E, low, high int, compare func(a, b E) int) {
	for i := low + 1; i <= high; i++ {
		key := data[i]
		j := i - 1

		for j >= low && compare(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
