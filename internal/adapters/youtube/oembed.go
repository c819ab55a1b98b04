package youtube

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"copygen/internal/core/domain"
)

const defaultOEmbedURL = "https://www.youtube.com/oembed"

// OEmbedFetcher resolves video titles from YouTube's unauthenticated
// oEmbed endpoint. Metadata is best-effort: a single attempt with a short
// timeout, no retries, and a synthesized fallback on any failure.
type OEmbedFetcher struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

// NewOEmbedFetcher creates an OEmbedFetcher. An empty endpoint selects the
// public YouTube oEmbed URL.
func NewOEmbedFetcher(endpoint string, logger *log.Logger) *OEmbedFetcher {
	if endpoint == "" {
		endpoint = defaultOEmbedURL
	}
	return &OEmbedFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		logger:   logger,
	}
}

// Fetch retrieves the video title, keyed by the original URL. It never
// fails; the pipeline proceeds with a placeholder title when the endpoint
// is unreachable.
func (f *OEmbedFetcher) Fetch(ctx context.Context, ref domain.VideoReference) domain.VideoMetadata {
	reqURL := fmt.Sprintf("%s?format=json&url=%s", f.endpoint, url.QueryEscape(ref.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fallbackMetadata(ref)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Printf("oembed lookup failed for %s: %v", ref.VideoID, err)
		return fallbackMetadata(ref)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Printf("oembed lookup for %s returned status %d", ref.VideoID, resp.StatusCode)
		return fallbackMetadata(ref)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fallbackMetadata(ref)
	}
	title := gjson.GetBytes(body, "title").String()
	if title == "" {
		return fallbackMetadata(ref)
	}
	return domain.VideoMetadata{Title: title}
}

func fallbackMetadata(ref domain.VideoReference) domain.VideoMetadata {
	return domain.VideoMetadata{Title: "Vídeo " + ref.VideoID}
}
