package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sink struct {
	lock    sync.Mutex
	batches [][]int
	fail    bool
}

func (s *sink) push(messages ...int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.fail {
		return errors.New("sink is down")
	}
	s.batches = append(s.batches, append([]int(nil), messages...))
	return nil
}

func (s *sink) all() (all []int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for _, b := range s.batches {
		all = append(all, b...)
	}
	return
}

func TestPushAll(t *testing.T) {
	s := &sink{}
	p := NewPusher(WithPushLogic(s.push), WithElements(1, 2))
	p.AddMessages(3)

	require.NoError(t, p.PushAll())
	require.Equal(t, []int{1, 2, 3}, s.all())
	require.Zero(t, p.Len())

	require.NoError(t, p.PushAll())
	require.Len(t, s.batches, 1, "empty buffers are not pushed")
}

func TestPushAllKeepsFailedBatch(t *testing.T) {
	s := &sink{fail: true}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)

	require.Error(t, p.PushAll())
	require.Equal(t, 2, p.Len())

	s.fail = false
	require.NoError(t, p.PushAll())
	require.Equal(t, []int{1, 2}, s.all())
}

func TestAddMessagesDuringPush(t *testing.T) {
	entered, release := make(chan struct{}), make(chan struct{})
	var pushed [][]int
	p := NewPusher(WithPushLogic(func(messages ...int) error {
		close(entered)
		<-release
		pushed = append(pushed, messages)
		return nil
	}))
	p.AddMessages(1)

	done := make(chan error)
	go func() { done <- p.PushAll() }()
	<-entered

	added := make(chan struct{})
	go func() {
		p.AddMessages(2)
		close(added)
	}()
	select {
	case <-added:
	case <-time.After(time.Second):
		t.Fatal("AddMessages blocked on a running push")
	}
	require.Equal(t, 1, p.Len())

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, [][]int{{1}}, pushed)
	require.Equal(t, 1, p.Len())
}

func TestFailedBatchKeepsOrder(t *testing.T) {
	s := &sink{fail: true}
	p := NewPusher(WithPushLogic(s.push))
	p.AddMessages(1, 2)
	require.Error(t, p.PushAll())
	p.AddMessages(3)

	s.fail = false
	require.NoError(t, p.PushAll())
	require.Equal(t, []int{1, 2, 3}, s.all())
}

func TestStartStop(t *testing.T) {
	s := &sink{}
	var errs []error
	p := NewPusher(
		WithPushLogic(s.push),
		WithPushInterval[int](time.Millisecond),
		WithErrorHandler[int](func(err error) { errs = append(errs, err) }),
	)
	p.Start()
	p.Start()

	p.AddMessages(1)
	require.Eventually(t, func() bool { return len(s.all()) == 1 }, time.Second, time.Millisecond)

	p.AddMessages(2, 3)
	p.Stop()
	p.Stop()
	require.Equal(t, []int{1, 2, 3}, s.all(), "Stop flushes what is left")
	require.Empty(t, errs)
}
