// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"iter"
)

var ErrChunkSizeOutOfRange = errors.New("chunk size is out of range")

// Chunk lazily groups seq into slices of size elements. The last slice may be
// shorter. The source is only advanced while the current chunk is being
// filled, so a source error is reported exactly at the chunk it belongs to and
// iteration stops there; chunks yielded before it are unaffected.
//
// A size of zero or less returns ErrChunkSizeOutOfRange.
func Chunk[T any](seq iter.Seq2[T, error], size int) (iter.Seq2[[]T, error], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChunkSizeOutOfRange, size)
	}

	return func(yield func([]T, error) bool) {
		chunk := make([]T, 0, size)
		for item, err := range seq {
			if err != nil {
				yield(nil, err)
				return
			}

			chunk = append(chunk, item)
			if len(chunk) < size {
				continue
			}
			if !yield(chunk, nil) {
				return
			}
			chunk = make([]T, 0, size)
		}

		if len(chunk) > 0 {
			yield(chunk, nil)
		}
	}, nil
}

// ChunkSlice is Chunk over an in-memory slice.
func ChunkSlice[T any](items []T, size int) (iter.Seq2[[]T, error], error) {
	return Chunk(SliceSeq(items), size)
}

// SliceSeq adapts a slice to the error-carrying sequence Chunk consumes.
func SliceSeq[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}
