package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chazu/curvekit/pkg/scene"
)

// EvalTimeout is the default hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

var (
	// ErrTimeout reports an evaluation that outlived its deadline.
	ErrTimeout = errors.New("engine: evaluation timed out")
	// ErrSuperseded reports an evaluation overtaken by a newer one.
	ErrSuperseded = errors.New("engine: evaluation superseded by newer request")
)

// outcome is what an evaluation goroutine hands back.
type outcome struct {
	scene *scene.Scene
	errs  []EvalError
	err   error
}

// await blocks until done delivers or ctx ends. An outcome from a
// generation older than the engine's current one is dropped as superseded.
// zygomys cannot be interrupted, so an abandoned evaluation keeps running
// and its outcome is discarded when it arrives.
func (e *Engine) await(ctx context.Context, done <-chan outcome, gen uint64) outcome {
	select {
	case o := <-done:
		if cur := e.currentGeneration(); cur != gen {
			return outcome{err: fmt.Errorf("%w (generation %d, now %d)", ErrSuperseded, gen, cur)}
		}
		return o
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return outcome{err: fmt.Errorf("%w after %s", ErrTimeout, e.timeout)}
		}
		return outcome{err: fmt.Errorf("engine: %w", ctx.Err())}
	}
}

func (e *Engine) currentGeneration() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}
