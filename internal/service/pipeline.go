package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"copygen/internal/adapters/youtube"
	"copygen/internal/copytext"
	"copygen/internal/core/domain"
	"copygen/internal/core/ports"
)

// Deps are the injected collaborators for one Pipeline. Transcriber is nil
// when the speech-to-text service is unconfigured; the pipeline then runs
// the simplified title-only flow instead of failing.
type Deps struct {
	Metadata    ports.MetadataFetcher
	Prober      ports.StreamProber
	Downloader  ports.Downloader
	Store       ports.ArtifactStore
	Transcriber ports.Transcriber
	Summarizer  ports.Summarizer
	Generator   ports.CopyGenerator

	MaxVideoDurationSec int
	Logger              *log.Logger
}

// Pipeline coordinates one video-to-copy run: resolve the URL, fetch
// metadata, acquire audio, transcribe, then summarize and generate copy
// concurrently and score every variant. Each run owns its temporary
// artifact and removes it before returning, success or failure.
type Pipeline struct {
	deps Deps
}

// New creates a Pipeline from its dependencies.
func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps}
}

// Run executes the full pipeline for a video URL and template.
func (p *Pipeline) Run(ctx context.Context, rawURL, templateID string, hints domain.CopyHints) (*domain.PipelineResult, error) {
	return p.run(ctx, rawURL, templateID, hints, true)
}

// RunQuick executes the simplified flow: no audio, no transcription, copy
// generated from the video title alone.
func (p *Pipeline) RunQuick(ctx context.Context, rawURL, templateID string, hints domain.CopyHints) (*domain.PipelineResult, error) {
	return p.run(ctx, rawURL, templateID, hints, false)
}

func (p *Pipeline) run(ctx context.Context, rawURL, templateID string, hints domain.CopyHints, full bool) (*domain.PipelineResult, error) {
	jobID := uuid.New().String()[:8]
	logger := p.deps.Logger

	ref, err := youtube.Resolve(rawURL)
	if err != nil {
		return nil, err
	}
	// Validate the template before touching any external service.
	if _, err := copytext.Lookup(templateID); err != nil {
		return nil, err
	}
	logger.Printf("[JOB %s] starting run for video %s, template %s", jobID, ref.VideoID, templateID)

	meta := p.deps.Metadata.Fetch(ctx, ref)
	logger.Printf("[JOB %s] resolved title: %s", jobID, meta.Title)

	transcript := ""
	switch {
	case full && p.deps.Transcriber != nil:
		unlock := p.deps.Store.Lock(ref.VideoID)
		defer unlock()
		defer p.cleanup(jobID, ref.VideoID)

		audioPath, durationSec, err := p.acquireAudio(ctx, jobID, ref)
		if err != nil {
			logger.Printf("[JOB %s] ERROR: %v", jobID, err)
			return nil, err
		}
		if meta.DurationSeconds == 0 {
			meta.DurationSeconds = durationSec
		}

		logger.Printf("[JOB %s] transcribing audio...", jobID)
		text, err := p.deps.Transcriber.Transcribe(ctx, audioPath)
		if err != nil {
			logger.Printf("[JOB %s] ERROR: %v", jobID, err)
			return nil, err
		}
		transcript = text
		logger.Printf("[JOB %s] transcript ready (%d chars)", jobID, len(transcript))
	case full:
		logger.Printf("[JOB %s] transcription service not configured, using title-only flow", jobID)
	}

	source := transcript
	if source == "" {
		source = meta.Title
	}

	// Summarization and generation are independent once the transcript is
	// available; final aggregation waits for both.
	var contentSummary domain.ContentSummary
	var variants []domain.CopyVariant
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contentSummary = p.deps.Summarizer.Summarize(gctx, source, meta.Title)
		return nil
	})
	g.Go(func() error {
		var genErr error
		variants, genErr = p.deps.Generator.Generate(gctx, source, templateID, hints)
		return genErr
	})
	if err := g.Wait(); err != nil {
		logger.Printf("[JOB %s] ERROR: %v", jobID, err)
		return nil, err
	}

	for i := range variants {
		variants[i].Score = copytext.Score(variants[i].Text, templateID)
	}

	logger.Printf("[JOB %s] run completed: %d variants generated", jobID, len(variants))
	return &domain.PipelineResult{
		Video: domain.VideoInfo{
			Title:    meta.Title,
			Duration: formatDuration(meta.DurationSeconds),
		},
		Transcription: domain.Transcription{
			FullText:  transcript,
			Summary:   contentSummary.Summary,
			KeyPoints: contentSummary.KeyPoints,
		},
		Copies: variants,
	}, nil
}

// acquireAudio returns the artifact path for the video, downloading it
// unless a cached artifact already exists. The duration ceiling is
// enforced against the declared source duration before any bytes move.
func (p *Pipeline) acquireAudio(ctx context.Context, jobID string, ref domain.VideoReference) (string, int, error) {
	logger := p.deps.Logger

	if p.deps.Store.Exists(ref.VideoID) {
		logger.Printf("[JOB %s] reusing cached audio artifact", jobID)
		return p.deps.Store.Path(ref.VideoID), 0, nil
	}

	info, err := p.deps.Prober.Probe(ctx, ref)
	if err != nil {
		return "", 0, domain.DownloadFailed(err)
	}
	if info.DurationSeconds > p.deps.MaxVideoDurationSec {
		return "", 0, domain.VideoTooLong(info.DurationSeconds, p.deps.MaxVideoDurationSec)
	}

	logger.Printf("[JOB %s] downloading audio stream (%ds source)...", jobID, info.DurationSeconds)
	stream, err := p.deps.Downloader.Download(ctx, info.AudioURL)
	if err != nil {
		return "", 0, domain.DownloadFailed(err)
	}
	defer stream.Close()

	artifact, err := p.deps.Store.Save(ctx, ref.VideoID, stream)
	if err != nil {
		return "", 0, domain.DownloadFailed(err)
	}
	logger.Printf("[JOB %s] audio artifact saved: %s", jobID, artifact.Path)
	return artifact.Path, info.DurationSeconds, nil
}

// cleanup removes the run's artifact. Removal failures are logged, not
// propagated; a leaked temp file is non-fatal.
func (p *Pipeline) cleanup(jobID, videoID string) {
	if err := p.deps.Store.Remove(videoID); err != nil {
		p.deps.Logger.Printf("[JOB %s] WARN: artifact cleanup failed: %v", jobID, err)
		return
	}
	p.deps.Logger.Printf("[JOB %s] audio artifact removed", jobID)
}

func formatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
