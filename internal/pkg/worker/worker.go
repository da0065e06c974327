package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Handler 处理单个任务
type Handler[T any] func(ctx context.Context, task T) error

type job[T any] struct {
	task  T
	retry int // 已重试次数
}

// Pool 固定数量协程消费任务，失败的任务延迟后重新入队，超过 MaxRetry 次后丢弃并记录
type Pool[T any] struct {
	name       string
	taskQueue  chan job[T]
	retryQueue chan job[T]
	handle     Handler[T]
	workerNum  int
	maxRetry   int
	backoff    time.Duration
	log        *zap.Logger

	wg      sync.WaitGroup
	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewPool bufferSize 为主队列长度，重试队列为其一半
func NewPool[T any](name string, handle Handler[T], workerNum, bufferSize int, log *zap.Logger) *Pool[T] {
	if workerNum <= 0 {
		workerNum = 1
	}
	if bufferSize <= 1 {
		bufferSize = 2
	}
	return &Pool[T]{
		name:       name,
		taskQueue:  make(chan job[T], bufferSize),
		retryQueue: make(chan job[T], bufferSize/2),
		handle:     handle,
		workerNum:  workerNum,
		maxRetry:   3,
		backoff:    time.Second,
		log:        log.With(zap.String("pool", name)),
	}
}

// Start 启动工作协程和重试协程
func (p *Pool[T]) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	for i := 0; i < p.workerNum; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.retryWorker()
	p.log.Info("worker pool started", zap.Int("workers", p.workerNum))
}

// Running 是否可以接收任务
func (p *Pool[T]) Running() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.started && !p.closed
}

// Stop 停止接收新任务并等待队列中的任务处理完，重试队列中剩余的任务被丢弃
func (p *Pool[T]) Stop() {
	p.mu.Lock()
	if !p.started || p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.taskQueue)
	p.mu.Unlock()

	p.wg.Wait()
	close(p.retryQueue)
	p.log.Info("worker pool stopped")
}

// AddTask 入队，队列满或已停止时返回 false
func (p *Pool[T]) AddTask(task T) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.started || p.closed {
		return false
	}

	select {
	case p.taskQueue <- job[T]{task: task}:
		return true
	default:
		p.log.Warn("queue full, dropping task", zap.Any("task", task))
		return false
	}
}

func (p *Pool[T]) worker(id int) {
	defer p.wg.Done()
	for j := range p.taskQueue {
		err := p.handle(context.Background(), j.task)
		if err == nil {
			continue
		}

		p.log.Warn("failed to process task", zap.Int("worker", id), zap.Int("retry", j.retry), zap.Error(err))
		if j.retry >= p.maxRetry {
			p.logFailedTask(j, err)
			continue
		}

		j.retry++
		select {
		case p.retryQueue <- j:
		default:
			p.logFailedTask(j, err)
		}
	}
}

func (p *Pool[T]) retryWorker() {
	for j := range p.retryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(j.retry) * p.backoff)

		p.mu.RLock()
		if p.closed {
			p.mu.RUnlock()
			p.logFailedTask(j, nil)
			continue
		}
		select {
		case p.taskQueue <- j:
		default:
			p.logFailedTask(j, nil)
		}
		p.mu.RUnlock()
	}
}

// logFailedTask 重试耗尽或队列已关闭的任务在此丢弃，只留日志；
// 通知丢失可接受，不影响帖子主流程
func (p *Pool[T]) logFailedTask(j job[T], err error) {
	p.log.Error("task failed permanently", zap.Any("task", j.task), zap.Int("retry", j.retry), zap.Error(err))
}
