package ports

import (
	"context"
	"io"

	"copygen/internal/core/domain"
)

// StreamInfo holds the resolved audio stream for a video: the direct
// download URL of the lowest-acceptable-quality audio-only track and the
// source duration declared by the platform.
type StreamInfo struct {
	AudioURL        string
	DurationSeconds int
}

// MetadataFetcher resolves a human-readable title for a video.
type MetadataFetcher interface {
	// Fetch retrieves metadata with a single bounded attempt. Metadata is
	// best-effort: on any failure it returns a locally synthesized value
	// containing the video ID. It never fails.
	Fetch(ctx context.Context, ref domain.VideoReference) domain.VideoMetadata
}

// StreamProber resolves the platform's stream metadata for a video.
type StreamProber interface {
	// Probe returns the direct audio stream URL and declared duration.
	Probe(ctx context.Context, ref domain.VideoReference) (StreamInfo, error)
}

// Downloader fetches a remote byte stream.
type Downloader interface {
	// Download fetches the stream at the given URL.
	// Returns a ReadCloser that the caller must close.
	Download(ctx context.Context, streamURL string) (io.ReadCloser, error)
}

// ArtifactStore owns the lifecycle of temporary audio artifacts. Artifacts
// are keyed by video ID so concurrent runs for distinct videos never
// collide, and runs for the same video coordinate through Lock.
type ArtifactStore interface {
	// Lock acquires the per-video-ID lock and returns its release func.
	Lock(videoID string) (unlock func())

	// Path returns the deterministic artifact path for a video ID.
	Path(videoID string) string

	// Exists reports whether an artifact is already on disk for the ID.
	Exists(videoID string) bool

	// Save streams audio bytes to the artifact path. A partially written
	// file is never left behind on error.
	Save(ctx context.Context, videoID string, r io.Reader) (domain.AudioArtifact, error)

	// Remove deletes the artifact for the ID. Removing a missing artifact
	// is not an error.
	Remove(videoID string) error
}

// Transcriber runs the full transcription job lifecycle for an audio file:
// upload, job creation, and polling to a terminal state.
type Transcriber interface {
	// Transcribe returns the transcript text, or a typed error for upload
	// failures, service-side errors, and poll-budget exhaustion.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// CompletionRequest is one bounded chat-completion call.
type CompletionRequest struct {
	System      string
	User        string
	MaxTokens   int64
	Temperature float64
}

// ChatCompleter is the generative-language backend used by the summarizer
// and copy generator. Injected so tests can substitute a fake.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Summarizer produces an executive summary from a transcript.
type Summarizer interface {
	// Summarize never fails: on any backend error it degrades to a
	// deterministic local summary.
	Summarize(ctx context.Context, source, title string) domain.ContentSummary
}

// CopyGenerator produces marketing-copy candidates for a template.
type CopyGenerator interface {
	// Generate returns exactly five unscored variants. The only error it
	// returns is for a template ID outside the catalog; backend failures
	// degrade to the template's local example variants.
	Generate(ctx context.Context, source, templateID string, hints domain.CopyHints) ([]domain.CopyVariant, error)
}
