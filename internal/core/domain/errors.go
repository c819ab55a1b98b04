package domain

import (
	"errors"
	"fmt"
)

// Phase tags a fatal error with the pipeline stage that produced it, so
// callers can report which part of the run failed without parsing messages.
type Phase string

const (
	PhaseAcquisition   Phase = "acquisition"
	PhaseTranscription Phase = "transcription"
	PhaseTemplating    Phase = "templating"
)

// Sentinel errors for the pipeline error taxonomy. Fatal errors returned to
// callers wrap one of these, so errors.Is works across the package boundary.
var (
	ErrInvalidURL           = errors.New("invalid video url")
	ErrVideoTooLong         = errors.New("video exceeds maximum duration")
	ErrDownloadFailed       = errors.New("audio download failed")
	ErrUploadFailed         = errors.New("audio upload failed")
	ErrTranscriptionService = errors.New("transcription service reported an error")
	ErrTranscriptionTimeout = errors.New("transcription timed out")
	ErrUnknownTemplate      = errors.New("unknown copy template")
)

// PipelineError is a fatal, caller-visible pipeline failure. Message is
// suitable for direct display to an end user; Err carries the technical
// detail for logs.
type PipelineError struct {
	Phase   Phase
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Phase, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Phase, e.Message)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// InvalidURL reports a URL that does not match the accepted video URL shape.
func InvalidURL(rawURL string) *PipelineError {
	return &PipelineError{
		Phase:   PhaseAcquisition,
		Message: "O link informado não parece ser um vídeo válido do YouTube.",
		Err:     fmt.Errorf("%w: %q", ErrInvalidURL, rawURL),
	}
}

// VideoTooLong reports a source whose declared duration exceeds the ceiling.
// Raised before any download begins.
func VideoTooLong(durationSec, maxSec int) *PipelineError {
	return &PipelineError{
		Phase:   PhaseAcquisition,
		Message: fmt.Sprintf("O vídeo é muito longo para processar (limite de %d minutos).", maxSec/60),
		Err:     fmt.Errorf("%w: %ds > %ds", ErrVideoTooLong, durationSec, maxSec),
	}
}

// DownloadFailed reports a stream resolution or download error.
func DownloadFailed(cause error) *PipelineError {
	return &PipelineError{
		Phase:   PhaseAcquisition,
		Message: "Não foi possível baixar o áudio do vídeo. Tente novamente em instantes.",
		Err:     fmt.Errorf("%w: %v", ErrDownloadFailed, cause),
	}
}

// UploadFailed reports a failure uploading audio to the transcription service.
func UploadFailed(cause error) *PipelineError {
	return &PipelineError{
		Phase:   PhaseTranscription,
		Message: "Não foi possível enviar o áudio para transcrição.",
		Err:     fmt.Errorf("%w: %v", ErrUploadFailed, cause),
	}
}

// TranscriptionFailed reports a terminal error state from the transcription
// service, carrying the service's own message.
func TranscriptionFailed(serviceMessage string) *PipelineError {
	return &PipelineError{
		Phase:   PhaseTranscription,
		Message: "A transcrição do vídeo falhou. Tente novamente em instantes.",
		Err:     fmt.Errorf("%w: %s", ErrTranscriptionService, serviceMessage),
	}
}

// TranscriptionTimedOut reports a job that never reached a terminal state
// within the poll budget.
func TranscriptionTimedOut(attempts int) *PipelineError {
	return &PipelineError{
		Phase:   PhaseTranscription,
		Message: "A transcrição demorou mais que o esperado. Tente novamente em instantes.",
		Err:     fmt.Errorf("%w after %d attempts", ErrTranscriptionTimeout, attempts),
	}
}

// UnknownTemplate reports a template ID outside the fixed catalog.
func UnknownTemplate(templateID string) *PipelineError {
	return &PipelineError{
		Phase:   PhaseTemplating,
		Message: "O modelo de copy selecionado não existe.",
		Err:     fmt.Errorf("%w: %q", ErrUnknownTemplate, templateID),
	}
}
