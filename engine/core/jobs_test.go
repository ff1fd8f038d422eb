package core

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewJobSystemArguments(t *testing.T) {
	if _, err := NewJobSystem(0, 1); !errors.Is(err, ErrNoWorkers) {
		t.Errorf("0 workers: %v", err)
	}
	if _, err := NewJobSystem(1, -1); !errors.Is(err, ErrNegativeChannelSize) {
		t.Errorf("negative queue: %v", err)
	}
}

func TestJobSystemCallbacksRunOnUpdate(t *testing.T) {
	js, err := NewJobSystem(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer js.Shutdown()

	var ran atomic.Int32
	var completed []interface{}
	var failed []error
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		i := i
		err := js.Submit(JobTask{
			Name: "square",
			Run: func() (interface{}, error) {
				ran.Add(1)
				return i * i, nil
			},
			OnComplete: func(result interface{}) { completed = append(completed, result) },
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := js.Submit(JobTask{
		Name:      "broken",
		Run:       func() (interface{}, error) { ran.Add(1); return nil, boom },
		OnFailure: func(err error) { failed = append(failed, err) },
	}); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	handled := 0
	for handled < 4 && time.Now().Before(deadline) {
		handled += js.Update()
		time.Sleep(time.Millisecond)
	}
	if handled != 4 || ran.Load() != 4 {
		t.Fatalf("handled %d, ran %d", handled, ran.Load())
	}
	if len(completed) != 3 {
		t.Errorf("completed = %v", completed)
	}
	if len(failed) != 1 || !errors.Is(failed[0], boom) {
		t.Errorf("failed = %v", failed)
	}
}

func TestJobSystemShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	called := false
	if err := js.Submit(JobTask{
		Name:       "late",
		Run:        func() (interface{}, error) { return nil, nil },
		OnComplete: func(interface{}) { called = true },
	}); err != nil {
		t.Fatal(err)
	}
	if err := js.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if n := js.Update(); n != 0 || called {
		t.Errorf("callbacks ran after shutdown: %d", n)
	}
	if err := js.Submit(JobTask{Name: "after"}); !errors.Is(err, ErrJobSystemClosed) {
		t.Errorf("submit after shutdown: %v", err)
	}
	if err := js.Shutdown(); err != nil {
		t.Errorf("second shutdown: %v", err)
	}
}
