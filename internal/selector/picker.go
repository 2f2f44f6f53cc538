package selector

import (
	crand "crypto/rand"
	"encoding/binary"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields integers uniformly distributed in [0, n).
// A Source is never used by two goroutines at once.
type Source interface {
	IntN(n int) int
}

// Picker draws uniformly random entries. Random sources are pooled so each
// one is held by a single goroutine per draw and reused across requests.
type Picker struct {
	sources sync.Pool
}

// NewPicker returns a Picker whose sources are ChaCha8 generators seeded
// from OS entropy.
func NewPicker() *Picker {
	return NewPickerWithSource(NewEntropySource)
}

// NewPickerWithSource returns a Picker that creates sources with newSource
// whenever the pool is empty.
func NewPickerWithSource(newSource func() Source) *Picker {
	p := &Picker{}
	p.sources.New = func() any {
		return newSource()
	}
	return p
}

// Pick returns one element of entries chosen uniformly at random, or
// ErrNoMatch when entries is empty. Exactly one draw is made.
func (p *Picker) Pick(entries []string) (string, error) {
	return p.pickFrom(len(entries), func(i int) string { return entries[i] })
}

// pickFrom draws one index in [0, n) and returns at(i), or ErrNoMatch when
// n is zero.
func (p *Picker) pickFrom(n int, at func(int) string) (string, error) {
	if n == 0 {
		return "", ErrNoMatch
	}

	src := p.sources.Get().(Source)
	defer p.sources.Put(src)

	return at(src.IntN(n)), nil
}

// NewEntropySource returns a ChaCha8 generator seeded from crypto/rand.
func NewEntropySource() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		slog.Error("failed to read OS entropy for random source",
			"error", err,
			"fallback", "time-based seed")
		binary.LittleEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
		binary.LittleEndian.PutUint64(seed[8:16], uint64(time.Now().Unix()))
	}
	return rand.New(rand.NewChaCha8(seed))
}
