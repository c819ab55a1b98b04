package domain

import "time"

// VideoReference identifies one video for the duration of a pipeline run.
// A non-empty VideoID implies the URL matched one of the accepted YouTube
// URL shapes.
type VideoReference struct {
	URL     string `json:"url"`
	VideoID string `json:"video_id"`
}

// VideoMetadata holds the human-readable info resolved for a video.
// Title is always non-empty; when the metadata endpoint is unreachable it
// is synthesized from the video ID. DurationSeconds is 0 when unknown.
type VideoMetadata struct {
	Title           string `json:"title"`
	DurationSeconds int    `json:"duration_seconds"`
}

// AudioArtifact is the temporary audio file extracted for one video.
// At most one artifact per VideoID exists on disk at a time, and it is
// removed before the pipeline run returns.
type AudioArtifact struct {
	Path      string    `json:"path"`
	VideoID   string    `json:"video_id"`
	CreatedAt time.Time `json:"created_at"`
}

// JobStatus is the state of an external transcription job.
type JobStatus string

const (
	JobCreated    JobStatus = "created"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobError      JobStatus = "error"
	// JobTimedOut is declared by the client after exhausting its poll
	// budget, never by the external service.
	JobTimedOut JobStatus = "timed_out"
)

// TranscriptionJob mirrors the lifecycle of an external speech-to-text job.
// Transitions are driven exclusively by polling the service.
type TranscriptionJob struct {
	ID           string    `json:"id"`
	Status       JobStatus `json:"status"`
	ResultText   string    `json:"result_text,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// ContentSummary is the executive summary derived from a transcript.
// KeyPoints holds between 1 and 5 entries.
type ContentSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// CopyVariant is one generated marketing-copy candidate. Score is always
// recomputed deterministically from Text and the originating template.
type CopyVariant struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// CopyHints are optional caller-supplied adjustments for copy generation.
type CopyHints struct {
	Tone     string `json:"tone,omitempty"`
	Audience string `json:"audience,omitempty"`
}

// VideoInfo is the video section of the pipeline output contract.
type VideoInfo struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// Transcription is the transcript section of the pipeline output contract.
type Transcription struct {
	FullText  string   `json:"fullText"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// PipelineResult aggregates everything one pipeline run produces. Nothing
// here is persisted by the pipeline itself; that is the caller's job.
type PipelineResult struct {
	Video         VideoInfo     `json:"video"`
	Transcription Transcription `json:"transcription"`
	Copies        []CopyVariant `json:"copies"`
}
