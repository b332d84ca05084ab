package util

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Matrix2DPool provides pooling for 2D scratch matrices, keyed by dimensions.
// Separable filters take one per channel for the intermediate horizontal pass.
type Matrix2DPool[T any] struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

var (
	float32Pool2D = &Matrix2DPool[float32]{pools: make(map[string]*sync.Pool)}
)

// getPoolKey generates a key for the pool map
func getPoolKey(height, width int) string {
	return fmt.Sprintf("%d_%d", height, width)
}

// Get retrieves a 2D matrix from the pool or creates a new one
func (p *Matrix2DPool[T]) Get(height, width int) [][]T {
	if height == 0 || width == 0 {
		return MakeMatrix2D[T](height, width)
	}

	key := getPoolKey(height, width)

	// Fast path: read lock
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		if matrix := pool.Get(); matrix != nil {
			p.hits.Add(1)
			return matrix.([][]T)
		}
	} else {
		// Slow path: create new pool
		p.mu.Lock()
		// Double-check after acquiring write lock
		_, exists = p.pools[key]
		if !exists {
			p.pools[key] = &sync.Pool{}
		}
		p.mu.Unlock()
	}

	p.misses.Add(1)
	return MakeMatrix2D[T](height, width)
}

// Put returns a 2D matrix to the pool after clearing it
func (p *Matrix2DPool[T]) Put(matrix [][]T) {
	height := len(matrix)
	if height == 0 {
		return
	}

	width := len(matrix[0])
	key := getPoolKey(height, width)

	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		var zero T
		for i := range matrix {
			for j := range matrix[i] {
				matrix[i][j] = zero
			}
		}
		pool.Put(matrix)
	}
}

// GetMetrics returns pool usage statistics
func (p *Matrix2DPool[T]) GetMetrics() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

// MakeMatrix2DPooled creates or retrieves a zeroed 2D matrix from the pool
func MakeMatrix2DPooled[T any](height, width int) [][]T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32Pool2D.Get(height, width)).([][]T)
	default:
		return MakeMatrix2D[T](height, width)
	}
}

// ReturnMatrix2DToPool returns a 2D matrix to the pool
func ReturnMatrix2DToPool[T any](matrix [][]T) {
	if len(matrix) == 0 {
		return
	}

	var zero T
	switch any(zero).(type) {
	case float32:
		float32Pool2D.Put(any(matrix).([][]float32))
	}
}

// GetPoolMetrics returns metrics for all pools
func GetPoolMetrics() map[string]map[string]int64 {
	f32Hits, f32Misses := float32Pool2D.GetMetrics()

	return map[string]map[string]int64{
		"float32_2d": {
			"hits":   f32Hits,
			"misses": f32Misses,
		},
	}
}
