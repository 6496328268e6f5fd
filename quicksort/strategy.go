package quicksort

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Strategy 피벗 선택 전략
type Strategy int

const (
	FirstElement Strategy = iota
	RandomElement
	// first, middle, last 세 원소의 중앙값
	MedianOfThree
)

var strategyNames = map[Strategy]string{
	FirstElement:  "FIRST_ELEMENT",
	RandomElement: "RANDOM_ELEMENT",
	MedianOfThree: "MEDIAN_OF_THREE_ELEMENTS",
}

// Strategies 실행 순서대로 정렬된 전체 전략 목록
func Strategies() []Strategy {
	return []Strategy{FirstElement, RandomElement, MedianOfThree}
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid 알려진 전략인지 확인
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy 리포트 이름(대소문자 무시)을 전략으로 변환
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, errors.Mark(errors.Newf("unsupported pivot strategy %q", name), ErrInvalidArgument)
}
