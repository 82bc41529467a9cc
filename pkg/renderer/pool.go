package renderer

import (
	"runtime"

	"github.com/alitto/pond/v2"
)

// PondRowPool adapts github.com/alitto/pond/v2 to the RowPool interface.
type PondRowPool struct {
	pool pond.Pool
}

// NewPondRowPool creates a row pool sized to available hardware parallelism.
func NewPondRowPool() *PondRowPool {
	return &PondRowPool{pool: pond.NewPool(runtime.NumCPU())}
}

// Submit enqueues task to run on the next available worker.
func (p *PondRowPool) Submit(task func()) {
	p.pool.Submit(task)
}

// Wait blocks until every submitted task has completed, then stops the
// pool's workers.
func (p *PondRowPool) Wait() {
	p.pool.StopAndWait()
}
