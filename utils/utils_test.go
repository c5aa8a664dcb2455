package utils

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWork(t *testing.T) {
	const n = 1000
	var seen [n]atomic.Uint32
	var inits atomic.Int32

	err := SplitWork(8, n, func(workIndex uint64, routineIndex int) error {
		seen[workIndex].Add(1)
		return nil
	}, func(routines, routineIndex int) error {
		inits.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(8), inits.Load())

	for i := range seen {
		if seen[i].Load() != 1 {
			t.Fatalf("index %d processed %d times", i, seen[i].Load())
		}
	}
}

func TestSplitWorkError(t *testing.T) {
	errStop := errors.New("stop")
	err := SplitWork(0, 100, func(workIndex uint64, _ int) error {
		if workIndex == 42 {
			return errStop
		}
		return nil
	}, nil)
	assert.ErrorIs(t, err, errStop)
}

func TestSplitWorkSmall(t *testing.T) {
	var count atomic.Uint64
	require.NoError(t, SplitWork(16, 3, func(uint64, int) error {
		count.Add(1)
		return nil
	}, nil))
	assert.Equal(t, uint64(3), count.Load())
}

func testCache(t *testing.T, c Cache[string, int]) {
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Delete("a")
	_, ok = c.Get("a")
	assert.False(t, ok)

	c.Set("b", 2)
	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(3), misses)
}

func TestLRUCache(t *testing.T) {
	testCache(t, NewLRUCache[string, int](4))

	c := NewLRUCache[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)
	_, ok := c.Get(1)
	assert.False(t, ok, "oldest entry must be evicted")
}

func TestLRUCacheDelete(t *testing.T) {
	c := NewLRUCache[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Delete(1)
	c.Delete(5)

	// the freed slot takes a new entry without evicting 2
	c.Set(3, 3)
	_, ok := c.Get(1)
	assert.False(t, ok)
	v, ok := c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMapCache(t *testing.T) {
	testCache(t, NewMapCache[string, int](4))

	c := NewMapCache[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)
	v, ok := c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestNilCache(t *testing.T) {
	c := NewNilCache[string, int]()
	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, misses := c.Stats()
	assert.Equal(t, uint64(1), misses)
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.NotZero(t, level&LogLevelDebug)
	assert.NotZero(t, level&LogLevelError)

	level, err = ParseLogLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestPanicfLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stdout)

	assert.Panics(t, func() {
		Panicf("Test", "broken invariant %d", 7)
	})
	assert.True(t, strings.Contains(buf.String(), "[Test] PANIC broken invariant 7"), buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	type entry struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	buf, err := MarshalJSON(entry{Name: "a", Value: 3})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"a","value":3}`, string(buf))

	var out entry
	require.NoError(t, UnmarshalJSON(buf, &out))
	assert.Equal(t, entry{Name: "a", Value: 3}, out)
}

func TestSiUnits(t *testing.T) {
	assert.Equal(t, "1.50 K", SiUnits(1500, 2))
	assert.Equal(t, "2.0 M", SiUnits(2000000, 1))
	assert.Equal(t, "12 ", SiUnits(12, 0))
}

func TestSumNoEscape(t *testing.T) {
	h := sha256.New()
	_, _ = h.Write([]byte("abc"))
	var buf [sha256.Size]byte
	assert.Equal(t, h.Sum(nil), SumNoEscape(h, buf[:0]))
	assert.Equal(t, h.Sum(nil), buf[:])
}
