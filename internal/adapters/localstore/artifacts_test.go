package localstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("stream broke")
}

func TestArtifactStore_SaveAndReuse(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	ctx := context.Background()

	if store.Exists("dQw4w9WgXcQ") {
		t.Fatal("artifact must not exist before save")
	}

	artifact, err := store.Save(ctx, "dQw4w9WgXcQ", strings.NewReader("audio-bytes"))
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if artifact.VideoID != "dQw4w9WgXcQ" {
		t.Errorf("VideoID = %q", artifact.VideoID)
	}
	if artifact.Path != store.Path("dQw4w9WgXcQ") {
		t.Errorf("Path = %q, want %q", artifact.Path, store.Path("dQw4w9WgXcQ"))
	}
	if !store.Exists("dQw4w9WgXcQ") {
		t.Error("Exists = false after save")
	}

	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("artifact content = %q", data)
	}
}

func TestArtifactStore_PathIsDeterministicPerVideoID(t *testing.T) {
	store := NewArtifactStore("/tmp/copygen")
	a := store.Path("aaaaaaaaaaa")
	b := store.Path("bbbbbbbbbbb")
	if a == b {
		t.Error("distinct video IDs must map to distinct paths")
	}
	if a != store.Path("aaaaaaaaaaa") {
		t.Error("path must be deterministic")
	}
	if filepath.Base(a) != "audio_aaaaaaaaaaa.m4a" {
		t.Errorf("unexpected artifact name %q", filepath.Base(a))
	}
}

func TestArtifactStore_SaveRemovesPartialOnError(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(dir)

	_, err := store.Save(context.Background(), "dQw4w9WgXcQ", failingReader{})
	if err == nil {
		t.Fatal("Save should fail when the stream breaks")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("partial files left behind: %v", entries)
	}
}

func TestArtifactStore_SaveHonorsCancellation(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "dQw4w9WgXcQ", strings.NewReader("audio"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if store.Exists("dQw4w9WgXcQ") {
		t.Error("cancelled save must not leave an artifact")
	}
}

func TestArtifactStore_RemoveMissingIsNotAnError(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	if err := store.Remove("dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Remove of missing artifact: %v", err)
	}
}

func TestArtifactStore_Remove(t *testing.T) {
	store := NewArtifactStore(t.TempDir())
	if _, err := store.Save(context.Background(), "dQw4w9WgXcQ", strings.NewReader("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Remove("dQw4w9WgXcQ"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if store.Exists("dQw4w9WgXcQ") {
		t.Error("artifact still exists after Remove")
	}
}

func TestArtifactStore_LockSerializesSameVideoID(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	unlock := store.Lock("dQw4w9WgXcQ")
	acquired := make(chan struct{})
	go func() {
		u := store.Lock("dQw4w9WgXcQ")
		close(acquired)
		u()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second Lock never acquired after release")
	}
}

func TestArtifactStore_LockIndependentAcrossVideoIDs(t *testing.T) {
	store := NewArtifactStore(t.TempDir())

	unlockA := store.Lock("aaaaaaaaaaa")
	defer unlockA()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		u := store.Lock("bbbbbbbbbbb")
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock for a different video ID must not block")
	}
	wg.Wait()
}
