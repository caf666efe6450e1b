package utils

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectChunks[T any](t *testing.T, seq iter.Seq2[[]T, error]) ([][]T, error) {
	t.Helper()
	var chunks [][]T
	for chunk, err := range seq {
		if err != nil {
			return chunks, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

func TestChunk_SizeOutOfRange(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		seq, err := ChunkSlice([]int{1, 2, 3}, size)
		assert.Nil(t, seq)
		assert.ErrorIs(t, err, ErrChunkSizeOutOfRange)
	}
}

func TestChunk_Lengths(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		size       int
		wantChunks int
		wantLast   int
	}{
		{name: "empty source", length: 0, size: 3, wantChunks: 0},
		{name: "shorter than size", length: 2, size: 5, wantChunks: 1, wantLast: 2},
		{name: "exact multiple", length: 9, size: 3, wantChunks: 3, wantLast: 3},
		{name: "remainder", length: 10, size: 3, wantChunks: 4, wantLast: 1},
		{name: "size one", length: 4, size: 1, wantChunks: 4, wantLast: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := make([]int, tt.length)
			for i := range source {
				source[i] = i
			}

			seq, err := ChunkSlice(source, tt.size)
			require.NoError(t, err)

			chunks, err := collectChunks(t, seq)
			require.NoError(t, err)
			require.Len(t, chunks, tt.wantChunks)

			if tt.wantChunks > 0 {
				assert.Len(t, chunks[len(chunks)-1], tt.wantLast)
			}
			var flat []int
			for _, c := range chunks {
				flat = append(flat, c...)
			}
			if tt.length == 0 {
				assert.Empty(t, flat)
			} else {
				assert.Equal(t, source, flat)
			}
		})
	}
}

// TestChunk_IsLazy verifies that the source is advanced only while the
// current chunk is being filled.
func TestChunk_IsLazy(t *testing.T) {
	pulled := 0
	source := func(yield func(int, error) bool) {
		for i := range 10 {
			pulled++
			if !yield(i, nil) {
				return
			}
		}
	}

	seq, err := Chunk(source, 3)
	require.NoError(t, err)
	assert.Zero(t, pulled, "nothing must be pulled before iteration")

	next, stop := iter.Pull2(seq)
	defer stop()

	chunk, err, ok := next()
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, chunk)
	assert.Equal(t, 3, pulled)

	chunk, _, _ = next()
	assert.Equal(t, []int{3, 4, 5}, chunk)
	assert.Equal(t, 6, pulled)
}

// TestChunk_SourceErrorSurfacesAtItsChunk verifies earlier chunks are
// delivered before a failing element stops iteration.
func TestChunk_SourceErrorSurfacesAtItsChunk(t *testing.T) {
	boom := errors.New("source failed")
	source := func(yield func(int, error) bool) {
		for i := range 10 {
			if i == 4 {
				yield(0, boom)
				return
			}
			if !yield(i, nil) {
				return
			}
		}
	}

	seq, err := Chunk(source, 2)
	require.NoError(t, err)

	chunks, err := collectChunks(t, seq)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, chunks)
}

func TestChunk_EarlyBreakStopsSource(t *testing.T) {
	pulled := 0
	source := func(yield func(string, error) bool) {
		for _, s := range []string{"a", "b", "c", "d", "e"} {
			pulled++
			if !yield(s, nil) {
				return
			}
		}
	}

	seq, err := Chunk(source, 2)
	require.NoError(t, err)

	for chunk := range seq {
		assert.Equal(t, []string{"a", "b"}, chunk)
		break
	}
	assert.Equal(t, 2, pulled)
}

func TestChunk_ChunksAreIndependent(t *testing.T) {
	seq, err := ChunkSlice([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	chunks, err := collectChunks(t, seq)
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	chunks[0][0] = 100
	assert.True(t, slices.Equal([]int{3, 4}, chunks[1]))
}
