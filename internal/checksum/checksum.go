// Package checksum computes salted content digests used for change detection
// between pipeline runs.
package checksum

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxWorkers caps processor use.
	MaxWorkers = 8
	// ChunksPerWorker is how many row chunks each worker gets on average.
	ChunksPerWorker = 4
	// MinChunkSize keeps small tables in a single chunk.
	MinChunkSize = 10000
)

// Row is anything that renders its visible columns as strings.
type Row interface {
	Values() []string
}

// Workers returns the size of the checksum worker pool: min(8, cores/2), at least 1.
func Workers() int {
	n := runtime.NumCPU() / 2
	if n > MaxWorkers {
		n = MaxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Sum digests the concatenated values plus the salt.
func Sum(values []string, salt string) string {
	h := md5.New()
	for _, v := range values {
		h.Write([]byte(v))
	}
	h.Write([]byte(salt))
	return hex.EncodeToString(h.Sum(nil))
}

// Compute returns one checksum per row, in row order.
func Compute[R Row](rows []R, salt string) []string {
	out := make([]string, len(rows))
	for i := range rows {
		out[i] = Sum(rows[i].Values(), salt)
	}
	return out
}

// ChunkSize returns the rows per chunk for a table of n rows split across the given workers.
func ChunkSize(n, workers int) int {
	size := n/(workers*ChunksPerWorker) + 1
	if size < MinChunkSize {
		size = MinChunkSize
	}
	return size
}

// ComputeParallel splits rows into chunks and digests them on a bounded pool.
// The result is identical to Compute. Any worker failure fails the whole call.
func ComputeParallel[R Row](ctx context.Context, rows []R, salt string) ([]string, error) {
	workers := Workers()
	size := ChunkSize(len(rows), workers)
	out := make([]string, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("checksum rows %d-%d: %v", start, end, r)
				}
			}()
			if gctx.Err() != nil {
				return gctx.Err()
			}
			copy(out[start:end], Compute(rows[start:end], salt))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute checksums: %w", err)
	}

	return out, nil
}

// Key pairs a row index with its checksum. Change detection matches on this pair.
func Key(index, sum string) string {
	var sb strings.Builder
	sb.Grow(len(index) + len(sum) + 1)
	sb.WriteString(index)
	sb.WriteByte(0)
	sb.WriteString(sum)
	return sb.String()
}
