package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type _RunResult struct {
	Value uint64
	Times []time.Duration
}

func (r _RunResult) String() string {
	if len(r.Times) == 1 {
		return fmt.Sprintf("%d [%v]", r.Value, r.Times[0])
	}
	var sum time.Duration
	for _, t := range r.Times {
		sum += t
	}
	avg := sum / time.Duration(len(r.Times))
	deviation := max(avg-slices.Min(r.Times), slices.Max(r.Times)-avg)
	return fmt.Sprintf("%d [%v ± %v, %d samples]", r.Value, avg, deviation, len(r.Times))
}

// _runPart runs part once, then again until bench has elapsed. Every run
// must give the same value.
func _runPart(ctx context.Context, log *zap.Logger, part func() (uint64, error), bench time.Duration) (r _RunResult, err error) {
	start := time.Now()
	r.Value, err = part()
	if err != nil {
		return
	}
	r.Times = append(r.Times, time.Since(start))

	progress := rate.NewLimiter(rate.Every(time.Second), 1)
	progress.Allow()

	for time.Since(start) < bench {
		if err = ctx.Err(); err != nil {
			return
		}
		iterStart := time.Now()
		value, err := part()
		if err != nil {
			return r, err
		}
		r.Times = append(r.Times, time.Since(iterStart))
		if value != r.Value {
			return r, errorf("run %d gave %d, first run gave %d", len(r.Times), value, r.Value)
		}
		if progress.Allow() {
			log.Debug("benchmarking",
				zap.Int("samples", len(r.Times)),
				zap.Duration("remaining", bench-time.Since(start)),
			)
		}
	}
	return
}
