package storage

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestFileLock_LockUnlock(t *testing.T) {
	t.Parallel()

	lockPath := filepath.Join(t.TempDir(), "history.json.lock")
	lock := NewFileLock(lockPath)

	if err := lock.Lock(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if _, err := os.Stat(lockPath); err != nil {
		t.Errorf("lock file should exist after locking: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Errorf("second Unlock() should not error, got %v", err)
	}
}

func TestFileLock_UnlockWithoutLock(t *testing.T) {
	t.Parallel()

	lock := NewFileLock(filepath.Join(t.TempDir(), "never.lock"))
	if err := lock.Unlock(); err != nil {
		t.Errorf("Unlock() without Lock() should not error, got %v", err)
	}
}

func TestWithLock_Serializes(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("no flock on windows")
	}

	path := filepath.Join(t.TempDir(), "history.json")

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	locked := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		err := WithLock(path, func() error {
			close(locked)
			time.Sleep(50 * time.Millisecond)
			mu.Lock()
			order = append(order, 1)
			mu.Unlock()
			return nil
		})
		if err != nil {
			t.Errorf("WithLock 1: %v", err)
		}
	}()

	<-locked
	err := WithLock(path, func() error {
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Errorf("WithLock 2: %v", err)
	}
	wg.Wait()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestWithLock_ReturnsError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	err := WithLock(filepath.Join(t.TempDir(), "state.json"), func() error { return want })
	if !errors.Is(err, want) {
		t.Errorf("WithLock error = %v, want %v", err, want)
	}
}
