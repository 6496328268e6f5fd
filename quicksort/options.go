package quicksort

import "math/rand/v2"

// Stats 정렬 한 번의 내부 카운터
type Stats struct {
	Partitions    int
	InsertionRuns int
	MaxDepth      int
}

type options struct {
	rng   *rand.Rand
	stats *Stats
}

// Option 정렬/생성 옵션
type Option func(*options)

// WithRand 호출 전체에서 하나의 난수 생성기를 공유
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithStats 파티션/삽입정렬 횟수 수집
func WithStats(stats *Stats) Option {
	return func(o *options) {
		o.stats = stats
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// NewRand 시드 고정 난수 생성기 (재현 가능한 벤치마크용)
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
