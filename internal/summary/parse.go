package summary

import (
	"regexp"
	"strings"

	"copygen/internal/core/domain"
)

var bulletPrefix = regexp.MustCompile(`^\s*(?:[-•*]|\d+[\.\)])\s*`)

// placeholderKeyPoint substitutes an empty key-point list; the contract
// guarantees at least one entry.
const placeholderKeyPoint = "Principais ideias do vídeo analisado"

// ParseResponse extracts the RESUMO and PONTOS-CHAVE sections from model
// output. Key points are capped at five; when none parse, a single
// placeholder entry is substituted.
func ParseResponse(raw string) domain.ContentSummary {
	summaryText, pointsText := splitSections(raw)

	points := make([]string, 0, maxKeyPoints)
	for _, line := range strings.Split(pointsText, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		points = append(points, line)
		if len(points) == maxKeyPoints {
			break
		}
	}
	if len(points) == 0 {
		points = []string{placeholderKeyPoint}
	}

	return domain.ContentSummary{
		Summary:   strings.TrimSpace(summaryText),
		KeyPoints: points,
	}
}

// splitSections locates the two section markers, tolerating optional
// leading markdown and case differences.
func splitSections(raw string) (summaryText, pointsText string) {
	upper := strings.ToUpper(raw)
	sumIdx := strings.Index(upper, "RESUMO:")
	ptsIdx := strings.Index(upper, "PONTOS-CHAVE:")

	if sumIdx < 0 {
		// No markers at all: treat everything before the points marker
		// (or the whole text) as the summary.
		if ptsIdx < 0 {
			return raw, ""
		}
		return raw[:ptsIdx], raw[ptsIdx+len("PONTOS-CHAVE:"):]
	}

	start := sumIdx + len("RESUMO:")
	if ptsIdx < 0 {
		return raw[start:], ""
	}
	if ptsIdx < start {
		return raw[start:], ""
	}
	return raw[start:ptsIdx], raw[ptsIdx+len("PONTOS-CHAVE:"):]
}
