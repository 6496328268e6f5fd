package quicksort

import "github.com/cockroachdb/errors"

// ErrInvalidArgument 잘못된 입력 (음수 크기, nil 슬라이스, 알 수 없는 전략)
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidArgument)
}
