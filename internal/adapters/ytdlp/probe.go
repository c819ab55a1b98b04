package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"copygen/internal/core/domain"
	"copygen/internal/core/ports"
)

// Prober resolves a video's audio stream via the local yt-dlp binary. It
// selects the lowest-acceptable-quality audio-only track and reports the
// source duration declared by the platform, so the duration ceiling can be
// enforced before any download starts.
type Prober struct {
	binaryPath string
}

// NewProber creates a Prober. An empty path assumes yt-dlp is on PATH.
func NewProber(binaryPath string) *Prober {
	if binaryPath == "" {
		binaryPath = "yt-dlp"
	}
	return &Prober{binaryPath: binaryPath}
}

// Probe runs `yt-dlp -f worstaudio -j` and extracts the resolved stream
// URL and duration from the JSON dump.
func (p *Prober) Probe(ctx context.Context, ref domain.VideoReference) (ports.StreamInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.binaryPath,
		"-f", "worstaudio/worst",
		"-j",
		"--no-warnings",
		"--no-playlist",
		ref.URL,
	)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return ports.StreamInfo{}, fmt.Errorf("yt-dlp failed: %w, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	dump := out.Bytes()
	streamURL := gjson.GetBytes(dump, "url").String()
	if streamURL == "" {
		// Format-resolved dumps nest the URL under requested_formats.
		streamURL = gjson.GetBytes(dump, "requested_formats.0.url").String()
	}
	if streamURL == "" {
		return ports.StreamInfo{}, fmt.Errorf("yt-dlp returned no stream url for %s", ref.VideoID)
	}

	return ports.StreamInfo{
		AudioURL:        streamURL,
		DurationSeconds: int(gjson.GetBytes(dump, "duration").Int()),
	}, nil
}
