package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

type watchEnv struct {
	dir    string
	source string
	w      *Watcher
	builds atomic.Int32
}

func startWatcher(t *testing.T) *watchEnv {
	t.Helper()
	dir := t.TempDir()
	// Resolve symlinked temp dirs so event paths match.
	dir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	env := &watchEnv{dir: dir, source: filepath.Join(dir, "glossary.txt")}
	if err := os.WriteFile(env.source, []byte("---\nApple:\n\tfruit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	env.w, err = New(env.source, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = env.w.Run(ctx, func(context.Context) error {
			env.builds.Add(1)
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	time.Sleep(100 * time.Millisecond)
	return env
}

func TestWatcher_SourceChangeRebuilds(t *testing.T) {
	env := startWatcher(t)
	_ = os.WriteFile(env.source, []byte("---\nApple:\n\tred fruit\n"), 0o644)

	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return env.builds.Load() >= 1
	}, "source change did not trigger a rebuild")
}

func TestWatcher_BurstIsDebounced(t *testing.T) {
	env := startWatcher(t)
	for i := range 5 {
		_ = os.WriteFile(env.source, []byte("---\nApple:\n\tv"+string(rune('a'+i))+"\n"), 0o644)
	}
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return env.builds.Load() >= 1
	}, "no rebuild after burst")
	time.Sleep(200 * time.Millisecond)
	if n := env.builds.Load(); n != 1 {
		t.Errorf("builds = %d, want 1", n)
	}
}

func TestWatcher_IgnoresOwnWrite(t *testing.T) {
	env := startWatcher(t)
	normalized := []byte("---\nApple: \n\tfruit\n\n")
	env.w.Ignore(env.source, normalized)
	_ = os.WriteFile(env.source, normalized, 0o644)

	time.Sleep(300 * time.Millisecond)
	if n := env.builds.Load(); n != 0 {
		t.Errorf("builds = %d, want 0 for an ignored write", n)
	}
}

func TestWatcher_ImagesTriggerOthersDoNot(t *testing.T) {
	env := startWatcher(t)
	_ = os.WriteFile(filepath.Join(env.dir, "notes.txt"), []byte("unrelated"), 0o644)
	_ = os.Mkdir(filepath.Join(env.dir, "wiki"), 0o755)
	time.Sleep(300 * time.Millisecond)
	if n := env.builds.Load(); n != 0 {
		t.Fatalf("builds = %d after unrelated changes", n)
	}

	_ = os.WriteFile(filepath.Join(env.dir, "apple.png"), []byte("png"), 0o644)
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return env.builds.Load() >= 1
	}, "image change did not trigger a rebuild")
}

func TestWatcher_RemovedImageRebuilds(t *testing.T) {
	env := startWatcher(t)
	img := filepath.Join(env.dir, "apple.png")
	_ = os.WriteFile(img, []byte("png"), 0o644)
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return env.builds.Load() >= 1
	}, "image creation did not trigger a rebuild")

	before := env.builds.Load()
	_ = os.Remove(img)
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		return env.builds.Load() > before
	}, "image removal did not trigger a rebuild")
}

func TestRelevant(t *testing.T) {
	w, err := New("/data/glossary.txt")
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"/data/glossary.txt":     true,
		"/data/apple.PNG":        true,
		"/data/.apple.png.swp":   false,
		"/data/readme.md":        false,
		"/data/wiki/apple.png":   false,
		"/elsewhere/glossary.txt": false,
	}
	for path, want := range cases {
		if got := w.relevant(path); got != want {
			t.Errorf("relevant(%q) = %v, want %v", path, got, want)
		}
	}
}
