package youtube

import (
	"regexp"
	"strings"

	"copygen/internal/core/domain"
)

// videoIDPattern accepts the watch, shorts, embed and youtu.be URL shapes
// and captures the 11-character video identifier.
var videoIDPattern = regexp.MustCompile(
	`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?v=|shorts/|embed/)|youtu\.be/)([A-Za-z0-9_-]{11})(?:[?&#/].*)?$`,
)

// Resolve validates a raw URL against the accepted YouTube URL shapes and
// extracts the video identifier. Pure function, no I/O.
func Resolve(rawURL string) (domain.VideoReference, error) {
	trimmed := strings.TrimSpace(rawURL)
	m := videoIDPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return domain.VideoReference{}, domain.InvalidURL(rawURL)
	}
	return domain.VideoReference{URL: trimmed, VideoID: m[1]}, nil
}
