package core

import (
	"fmt"
	"sync"
)

/**
 * @brief Describes a job to be run. Run executes on a worker goroutine;
 * OnComplete and OnFailure run on the goroutine calling Update, which is the
 * one owning the GL context.
 */
type JobTask struct {
	Name       string
	Run        func() (interface{}, error)
	OnComplete func(result interface{})
	OnFailure  func(err error)
}

type jobResult struct {
	task   JobTask
	result interface{}
	err    error
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mu       sync.Mutex
	finished []jobResult

	// guards closed and the sends on jobQueue
	queueMu sync.RWMutex
	closed  bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = fmt.Errorf("job system is shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				result, err := job.Run()
				if err != nil {
					LogError("job `%s` failed: %s", job.Name, err.Error())
				}
				// results are kept in a slice so workers never wait on the
				// main loop
				js.mu.Lock()
				js.finished = append(js.finished, jobResult{task: job, result: result, err: err})
				js.mu.Unlock()
			}
		}()
	}
}

/**
 * @brief Shuts the job system down. Queued jobs still run, their callbacks
 * are dropped.
 */
func (js *JobSystem) Shutdown() error {
	js.queueMu.Lock()
	if js.closed {
		js.queueMu.Unlock()
		return nil
	}
	js.closed = true
	close(js.jobQueue)
	js.queueMu.Unlock()

	js.wg.Wait()

	js.mu.Lock()
	if n := len(js.finished); n > 0 {
		LogDebug("job system shut down, dropping %d results", n)
	}
	js.finished = nil
	js.mu.Unlock()
	return nil
}

/**
 * @brief Runs the callbacks of finished jobs. Should happen once an update
 * cycle. Returns the number of jobs handled.
 */
func (js *JobSystem) Update() int {
	js.mu.Lock()
	done := js.finished
	js.finished = nil
	js.mu.Unlock()

	for _, r := range done {
		if r.err != nil {
			if r.task.OnFailure != nil {
				r.task.OnFailure(r.err)
			}
			continue
		}
		if r.task.OnComplete != nil {
			r.task.OnComplete(r.result)
		}
	}
	return len(done)
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	js.queueMu.RLock()
	defer js.queueMu.RUnlock()
	if js.closed {
		return fmt.Errorf("job `%s`: %w", jt.Name, ErrJobSystemClosed)
	}
	js.jobQueue <- jt
	return nil
}
