package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

var ErrTooManyPositions = errors.New("not enough cells for the requested positions")

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRandomSource returns a pseudo-random Source seeded from crypto/rand.
// It is not safe for concurrent use.
func NewRandomSource() (Source, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}

	return rand.New(rand.NewSource(seed)), nil
}

// SamplePositions draws count distinct positions on a width x height grid.
// Columns and rows are drawn independently; duplicates are redrawn.
func SamplePositions(src Source, width, height, count int) ([]Pos, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: empty %dx%d grid", ErrTooManyPositions, width, height)
	}
	if count < 0 {
		return nil, fmt.Errorf("cannot sample %d positions", count)
	}
	if count > width*height {
		return nil, fmt.Errorf("%w: %d > %d * %d", ErrTooManyPositions, count, width, height)
	}

	positions := make([]Pos, 0, count)
	seen := make(map[Pos]struct{}, count)

	for len(positions) < count {
		p := Pos{X: src.Intn(width), Y: src.Intn(height)}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		positions = append(positions, p)
	}

	return positions, nil
}
