package tint

import (
	"fmt"
	"runtime"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

type bulkConfig struct {
	workers      int
	serial_below int
}

var defaultBulkConfig = bulkConfig{serial_below: 1024}

type BulkOption func(*bulkConfig)

// Workers sets the maximum number of goroutines used for a bulk
// conversion. Zero, the default, means use GOMAXPROCS.
func Workers(n int) BulkOption {
	return func(c *bulkConfig) {
		c.workers = max(0, n)
	}
}

// SerialBelow makes bulk conversions of fewer than n colors run on the
// calling goroutine.
func SerialBelow(n int) BulkOption {
	return func(c *bulkConfig) {
		c.serial_below = max(0, n)
	}
}

// ConvertSlice converts every color in src into the corresponding position
// in dst, splitting the work over multiple goroutines for large inputs.
// Every element is independent so the result does not depend on the number
// of goroutines. An error is returned if dst is shorter than src.
func ConvertSlice[B Encoding[B], A Encoding[A]](dst []B, src []A, opts ...BulkOption) (err error) {
	if len(dst) < len(src) {
		return fmt.Errorf("destination has room for %d colors but source has %d", len(dst), len(src))
	}
	cfg := defaultBulkConfig
	for _, o := range opts {
		o(&cfg)
	}
	if len(src) == 0 {
		return nil
	}
	var a A
	var b B
	sd, dd := a.descriptor(), b.descriptor()
	var f func(start, limit int)
	if _, same := any(a).(B); same {
		f = func(start, limit int) {
			for i := start; i < limit; i++ {
				dst[i] = any(src[i]).(B)
			}
		}
	} else {
		f = func(start, limit int) {
			d, s := dst[start:limit], src[start:limit]
			for i, c := range s {
				d[i] = b.fromComponents(encode(dd, convert_pixel(sd, dd, decode(sd, c.components()))))
			}
		}
	}
	if len(src) < cfg.serial_below || cfg.workers == 1 {
		f(0, len(src))
		return nil
	}
	Logger().Debug("bulk color conversion", "from", sd.Name, "to", dd.Name, "count", len(src), "workers", cfg.workers_or_default())
	return parallel.Run_in_parallel_over_range(cfg.workers, f, 0, len(src))
}

func (c bulkConfig) workers_or_default() int {
	if c.workers > 0 {
		return c.workers
	}
	return runtime.GOMAXPROCS(0)
}

// ConvertAll is like ConvertSlice but allocates the destination
func ConvertAll[B Encoding[B], A Encoding[A]](src []A, opts ...BulkOption) ([]B, error) {
	dst := make([]B, len(src))
	if err := ConvertSlice(dst, src, opts...); err != nil {
		return nil, err
	}
	return dst, nil
}
