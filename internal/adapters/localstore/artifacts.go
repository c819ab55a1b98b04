package localstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"copygen/internal/core/domain"
)

// ArtifactStore keeps temporary audio artifacts on the local filesystem,
// one file per video ID. The directory is shared across concurrent runs:
// distinct video IDs never collide, and runs for the same ID serialize
// through Lock so one run cannot delete an artifact another is reading.
type ArtifactStore struct {
	baseDir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewArtifactStore creates an ArtifactStore rooted at baseDir.
func NewArtifactStore(baseDir string) *ArtifactStore {
	return &ArtifactStore{
		baseDir: baseDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Lock acquires the per-video-ID lock, creating it on first use, and
// returns the release func.
func (s *ArtifactStore) Lock(videoID string) func() {
	s.mu.Lock()
	l, ok := s.locks[videoID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[videoID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Path returns the deterministic artifact path for a video ID.
func (s *ArtifactStore) Path(videoID string) string {
	return filepath.Join(s.baseDir, "audio_"+videoID+".m4a")
}

// Exists reports whether an artifact is already on disk for the ID.
func (s *ArtifactStore) Exists(videoID string) bool {
	info, err := os.Stat(s.Path(videoID))
	return err == nil && !info.IsDir()
}

// Save streams audio bytes to the artifact path. The file is written to a
// temporary name and renamed on success, so a cache hit never observes a
// partially written artifact.
func (s *ArtifactStore) Save(ctx context.Context, videoID string, r io.Reader) (domain.AudioArtifact, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("failed to create artifact directory %s: %w", s.baseDir, err)
	}

	finalPath := s.Path(videoID)
	partPath := finalPath + ".part"

	file, err := os.Create(partPath)
	if err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("failed to create artifact file %s: %w", partPath, err)
	}

	if _, err := io.Copy(file, readerWithContext(ctx, r)); err != nil {
		file.Close()
		os.Remove(partPath)
		return domain.AudioArtifact{}, fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(partPath)
		return domain.AudioArtifact{}, fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Rename(partPath, finalPath); err != nil {
		os.Remove(partPath)
		return domain.AudioArtifact{}, fmt.Errorf("failed to finalize artifact: %w", err)
	}

	return domain.AudioArtifact{
		Path:      finalPath,
		VideoID:   videoID,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Remove deletes the artifact for the ID. A missing artifact is not an
// error.
func (s *ArtifactStore) Remove(videoID string) error {
	if err := os.Remove(s.Path(videoID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove artifact for %s: %w", videoID, err)
	}
	return nil
}

// readerWithContext aborts a long copy when the context is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
