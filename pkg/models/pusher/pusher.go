package pusher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	running        atomic.Bool
	done           chan struct{}
	stopped        chan struct{}
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push failed: %v", err) },
		PushInterval: time.Second,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll pushes the buffer. The lock is released while PushLogic runs, so
// AddMessages never waits on the sink. A failed batch goes back to the front
// of the buffer for the next try.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	batch := p.MessagesBuffer
	p.MessagesBuffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.PushLogic(batch...); err != nil {
		p.lock.Lock()
		p.MessagesBuffer = append(batch, p.MessagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	if !p.running.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer close(p.stopped)

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.done:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop ends the push loop after a final push and waits for it.
func (p *Pusher[T]) Stop() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	<-p.stopped
}
