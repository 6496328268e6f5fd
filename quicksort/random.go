package quicksort

// GenerateRandom size개의 랜덤 32비트 정수 생성 (음수 포함 전체 범위)
func GenerateRandom(size int, opts ...Option) ([]int, error) {
	if size < 0 {
		return nil, invalidArgument("input size cannot be negative: %d", size)
	}

	o := buildOptions(opts)

	data := make([]int, size)
	for i := range size {
		data[i] = int(int32(o.rng.Uint32()))
	}
	return data, nil
}
