// Package queue runs fire-and-forget background tasks on a fixed pool of
// workers fed by a buffered channel. Enqueue only promises the task was
// accepted; delivery happens later on a worker.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"meetapp/internal/lib/logger/sl"
)

var (
	ErrClosed      = errors.New("queue is closed")
	ErrUnknownKind = errors.New("no handler registered for task kind")
)

type Task struct {
	Kind       string          `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

type Handler interface {
	Handle(ctx context.Context, task Task) error
}

type HandlerFunc func(ctx context.Context, task Task) error

func (f HandlerFunc) Handle(ctx context.Context, task Task) error {
	return f(ctx, task)
}

type Config struct {
	Workers     int
	Buffer      int
	TaskTimeout time.Duration
}

type Queue struct {
	log      *slog.Logger
	cfg      Config
	tasks    chan Task
	handlers map[string]Handler

	mu      sync.RWMutex
	closed  bool
	started sync.Once
	wg      sync.WaitGroup
}

func New(log *slog.Logger, cfg Config) *Queue {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Buffer < 0 {
		cfg.Buffer = 0
	}

	return &Queue{
		log:      log.With(slog.String("component", "queue")),
		cfg:      cfg,
		tasks:    make(chan Task, cfg.Buffer),
		handlers: make(map[string]Handler),
	}
}

// Register binds a handler to a task kind. It must be called before Start.
func (q *Queue) Register(kind string, h Handler) {
	q.handlers[kind] = h
}

func (q *Queue) Start() {
	q.started.Do(func() {
		q.log.Info("starting queue workers", slog.Int("workers", q.cfg.Workers))

		for i := 0; i < q.cfg.Workers; i++ {
			q.wg.Add(1)
			go q.worker(i)
		}
	})
}

// Enqueue encodes payload as JSON and hands the task to the worker pool. It
// blocks only while the buffer is full, until ctx is done.
func (q *Queue) Enqueue(ctx context.Context, kind string, payload any) error {
	const op = "queue.Enqueue"

	if _, ok := q.handlers[kind]; !ok {
		return fmt.Errorf("%s: %w: %s", op, ErrUnknownKind, kind)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	task := Task{
		Kind:       kind,
		Payload:    raw,
		EnqueuedAt: time.Now(),
	}

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("%s: %w", op, ErrClosed)
	}

	select {
	case q.tasks <- task:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// Stop refuses new tasks and waits for the workers to finish the buffered ones.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()

	q.Start()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.log.Info("queue stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()

	log := q.log.With(slog.Int("worker", id))

	for task := range q.tasks {
		q.process(log, task)
	}
}

func (q *Queue) process(log *slog.Logger, task Task) {
	log = log.With(slog.String("kind", task.Kind))

	defer func() {
		if r := recover(); r != nil {
			log.Error("task panicked", slog.Any("panic", r))
		}
	}()

	ctx := context.Background()
	if q.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.cfg.TaskTimeout)
		defer cancel()
	}

	start := time.Now()

	if err := q.handlers[task.Kind].Handle(ctx, task); err != nil {
		log.Error("task failed", sl.Err(err))
		return
	}

	log.Debug("task done",
		slog.Duration("duration", time.Since(start)),
		slog.Duration("waited", start.Sub(task.EnqueuedAt)),
	)
}
