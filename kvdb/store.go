// Package kvdb 벤치마크 실행 기록을 임베디드 KV 저장소(bbolt, BadgerDB, PebbleDB)에 보관한다.
package kvdb

import (
	"encoding/binary"
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	keySize    = 16
	bucketName = "runs"
)

// Backend 저장소 종류
type Backend string

const (
	Bbolt  Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

// Backends 지원하는 전체 백엔드
func Backends() []Backend {
	return []Backend{Bbolt, Badger, Pebble}
}

// ErrUnknownBackend 지원하지 않는 백엔드 이름
var ErrUnknownBackend = errors.New("unknown history backend")

// ParseBackend 이름으로 백엔드 선택
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends() {
		if strings.EqualFold(string(b), name) {
			return b, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownBackend, "%q", name)
}

// Result 전략 하나의 측정 결과
type Result struct {
	Strategy      string        `json:"strategy"`
	Duration      time.Duration `json:"duration"`
	MemoryUsage   uint64        `json:"memory_usage_bytes"`
	Partitions    int           `json:"partitions"`
	InsertionRuns int           `json:"insertion_runs"`
	MaxDepth      int           `json:"max_depth"`
}

// Record 실행 한 번의 기록
type Record struct {
	Time        time.Time `json:"time"`
	Size        int       `json:"size"`
	Seed        uint64    `json:"seed,omitempty"`
	Fingerprint uint64    `json:"fingerprint"`
	Results     []Result  `json:"results"`
}

// Store 실행 기록 저장소
type Store interface {
	Put(rec Record) error
	// List 저장 시각 순서로 전체 기록 반환
	List() ([]Record, error)
	Close() error
}

// Open backend 종류에 맞는 저장소를 path 에 연다
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case Bbolt:
		return openBolt(path)
	case Badger:
		return openBadger(path)
	case Pebble:
		return openPebble(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", string(backend))
	}
}

// recordKey 시각(big endian)이 앞에 오므로 키 순서 = 시간 순서
func recordKey(rec Record) []byte {
	var key [keySize]byte
	binary.BigEndian.PutUint64(key[:8], uint64(rec.Time.UnixNano()))
	binary.BigEndian.PutUint64(key[8:], rec.Fingerprint)
	return key[:]
}

func encodeRecord(rec Record) ([]byte, []byte, error) {
	value, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode record")
	}
	return recordKey(rec), value, nil
}

func decodeRecord(value []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(value, &rec); err != nil {
		return Record{}, errors.Wrap(err, "decode record")
	}
	return rec, nil
}

// BestDurations size 가 같은 기록들 중 전략별 최단 시간
func BestDurations(records []Record, size int) map[string]time.Duration {
	best := map[string]time.Duration{}
	for _, rec := range records {
		if rec.Size != size {
			continue
		}
		for _, r := range rec.Results {
			if d, ok := best[r.Strategy]; !ok || r.Duration < d {
				best[r.Strategy] = r.Duration
			}
		}
	}
	return best
}
