package assemblyai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"copygen/internal/core/domain"
	"copygen/internal/poll"
)

const defaultBaseURL = "https://api.assemblyai.com/v2"

// Client drives the two-phase transcription protocol against AssemblyAI:
// upload the raw audio bytes, create a transcript job referencing the
// upload, then poll the job at a fixed interval until it completes, errors
// out, or the attempt budget is exhausted.
type Client struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	pollInterval time.Duration
	maxAttempts  int
	logger       *log.Logger
}

// NewClient creates a Client. An empty baseURL selects the public
// AssemblyAI API; tests point it at a local server.
func NewClient(apiKey, baseURL string, pollInterval time.Duration, maxAttempts int, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: 2 * time.Minute},
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
		logger:       logger,
	}
}

// Transcribe uploads the audio file and polls the resulting job to a
// terminal state, returning the transcript text.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", domain.UploadFailed(err)
	}
	defer file.Close()

	uploadURL, err := c.upload(ctx, file)
	if err != nil {
		return "", domain.UploadFailed(err)
	}
	c.logger.Printf("audio uploaded, creating transcript job")

	jobID, err := c.createJob(ctx, uploadURL)
	if err != nil {
		return "", domain.TranscriptionFailed(err.Error())
	}
	c.logger.Printf("transcript job %s created, polling", jobID)

	return c.waitForTranscript(ctx, jobID)
}

// upload POSTs the raw audio bytes and returns the opaque upload reference.
// One attempt; any non-2xx response fails the run.
func (c *Client) upload(ctx context.Context, audio io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", audio)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	uploadURL := gjson.GetBytes(body, "upload_url").String()
	if uploadURL == "" {
		return "", errors.New("upload response missing upload_url")
	}
	return uploadURL, nil
}

// createJob creates a transcript job for the uploaded audio, with language
// detection and punctuation enabled.
func (c *Client) createJob(ctx context.Context, uploadURL string) (string, error) {
	payload, _ := sjson.Set("", "audio_url", uploadURL)
	payload, _ = sjson.Set(payload, "language_detection", true)
	payload, _ = sjson.Set(payload, "punctuate", true)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader([]byte(payload)))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("transcript create returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	jobID := gjson.GetBytes(body, "id").String()
	if jobID == "" {
		return "", errors.New("transcript response missing id")
	}
	return jobID, nil
}

// waitForTranscript polls the job at the fixed interval until a terminal
// state. The client never advances the job itself; it only declares a
// timeout after the attempt budget runs out.
func (c *Client) waitForTranscript(ctx context.Context, jobID string) (string, error) {
	var text string
	err := poll.Until(ctx, c.pollInterval, c.maxAttempts, func(ctx context.Context) (bool, error) {
		job, err := c.getJob(ctx, jobID)
		if err != nil {
			return false, domain.TranscriptionFailed(err.Error())
		}
		switch job.Status {
		case domain.JobCompleted:
			text = job.ResultText
			return true, nil
		case domain.JobError:
			return false, domain.TranscriptionFailed(job.ErrorMessage)
		default:
			return false, nil
		}
	})
	if errors.Is(err, poll.ErrBudgetExhausted) {
		return "", domain.TranscriptionTimedOut(c.maxAttempts)
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) getJob(ctx context.Context, jobID string) (domain.TranscriptionJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return domain.TranscriptionJob{}, err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.TranscriptionJob{}, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.TranscriptionJob{}, fmt.Errorf("transcript status returned %d", resp.StatusCode)
	}

	return domain.TranscriptionJob{
		ID:           jobID,
		Status:       mapStatus(gjson.GetBytes(body, "status").String()),
		ResultText:   gjson.GetBytes(body, "text").String(),
		ErrorMessage: gjson.GetBytes(body, "error").String(),
	}, nil
}

// mapStatus converts the service's status strings into the job state
// machine. Unknown values are treated as still processing.
func mapStatus(s string) domain.JobStatus {
	switch s {
	case "queued":
		return domain.JobCreated
	case "processing":
		return domain.JobProcessing
	case "completed":
		return domain.JobCompleted
	case "error":
		return domain.JobError
	default:
		return domain.JobProcessing
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
