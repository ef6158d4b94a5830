package mc

import (
	"runtime"
	"sync"

	"github.com/lumenrender/lumen/pkg/buffer"
	"github.com/lumenrender/lumen/pkg/scenecap"
)

// TileTask is a single tile's unit of work, grounded on
// pkg/renderer/worker_pool.go's TileTask.
type TileTask struct {
	Tile *Tile
	Spp  int
}

// TileResult reports a completed tile, grounded on
// pkg/renderer/worker_pool.go's TileResult.
type TileResult struct {
	Tile *Tile
	Dest *buffer.Collection
}

// TileRenderFunc renders one tile's bounds into dst.
type TileRenderFunc func(scene scenecap.Scene, tile *Tile, dst *buffer.Collection, spp int)

// WorkerPool fans TileTasks out across numWorkers goroutines, each
// rendering into its own per-tile Collection so goroutines never share
// mutable state, then reporting the result on resultQueue. Grounded on
// pkg/renderer/worker_pool.go's WorkerPool/Worker split, generalized from
// a fixed Raytracer.RenderBounds call to an injected TileRenderFunc so the
// same pool drives both the plain path integrator and the gradient
// integrator.
type WorkerPool struct {
	scene       scenecap.Scene
	render      TileRenderFunc
	width       int
	height      int
	channels    []string
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool builds a pool of numWorkers goroutines (runtime.NumCPU()
// if numWorkers <= 0) rendering tiles of a width x height image with
// render, each tile's destination Collection carrying the given channels.
func NewWorkerPool(scene scenecap.Scene, render TileRenderFunc, width, height int, channels []string, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		scene:       scene,
		render:      render,
		width:       width,
		height:      height,
		channels:    channels,
		taskQueue:   make(chan TileTask, 1024),
		resultQueue: make(chan TileResult, 1024),
		numWorkers:  numWorkers,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue, waits for every worker to drain it, then
// closes the result queue.
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask enqueues a tile task.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Results exposes the result channel for range iteration.
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		dst := buffer.NewCollection(wp.width, wp.height, wp.channels...)
		wp.render(wp.scene, task.Tile, dst, task.Spp)
		wp.resultQueue <- TileResult{Tile: task.Tile, Dest: dst}
	}
}
