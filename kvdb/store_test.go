package kvdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(at time.Time, size int, durations ...time.Duration) Record {
	rec := Record{Time: at, Size: size, Fingerprint: uint64(size) * 31}
	names := []string{"FIRST_ELEMENT", "RANDOM_ELEMENT", "MEDIAN_OF_THREE_ELEMENTS"}
	for i, d := range durations {
		rec.Results = append(rec.Results, Result{Strategy: names[i], Duration: d, Partitions: i})
	}
	return rec
}

func TestStoreRoundTrip(t *testing.T) {
	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	for _, backend := range Backends() {
		t.Run(string(backend), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history")

			s, err := Open(backend, path)
			require.NoError(t, err)

			empty, err := s.List()
			require.NoError(t, err)
			assert.Empty(t, empty)

			// 역순으로 저장해도 시간 순으로 읽혀야 한다
			require.NoError(t, s.Put(record(base.Add(2*time.Second), 100, 3*time.Millisecond)))
			require.NoError(t, s.Put(record(base, 100, 5*time.Millisecond)))
			require.NoError(t, s.Put(record(base.Add(time.Second), 50, time.Millisecond)))
			require.NoError(t, s.Close())

			s, err = Open(backend, path)
			require.NoError(t, err)
			defer s.Close()

			records, err := s.List()
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.True(t, records[0].Time.Equal(base))
			assert.Equal(t, 50, records[1].Size)
			assert.Equal(t, 3*time.Millisecond, records[2].Results[0].Duration)
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Backend("leveldb"), t.TempDir())
	assert.True(t, errors.Is(err, ErrUnknownBackend))

	_, err = ParseBackend("leveldb")
	assert.True(t, errors.Is(err, ErrUnknownBackend))

	b, err := ParseBackend("Pebble")
	require.NoError(t, err)
	assert.Equal(t, Pebble, b)
}

func TestBestDurations(t *testing.T) {
	now := time.Now()
	records := []Record{
		record(now, 100, 5*time.Millisecond, 9*time.Millisecond),
		record(now, 100, 7*time.Millisecond, 2*time.Millisecond, 4*time.Millisecond),
		record(now, 10, time.Nanosecond),
	}

	best := BestDurations(records, 100)
	assert.Equal(t, map[string]time.Duration{
		"FIRST_ELEMENT":            5 * time.Millisecond,
		"RANDOM_ELEMENT":           2 * time.Millisecond,
		"MEDIAN_OF_THREE_ELEMENTS": 4 * time.Millisecond,
	}, best)

	assert.Empty(t, BestDurations(records, 1))
}
