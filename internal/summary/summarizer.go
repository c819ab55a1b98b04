// Package summary produces executive summaries and key points from video
// transcripts, with a deterministic local fallback when the
// generative-language service is unconfigured or unavailable.
package summary

import (
	"context"
	"fmt"
	"log"

	"copygen/internal/core/domain"
	"copygen/internal/core/ports"
)

const (
	maxKeyPoints      = 5
	maxSourceChars    = 12000
	summaryMaxTokens  = 1500
	summaryTemp       = 0.7
	summarySystemTxt  = "Você é um especialista em marketing de conteúdo. Resuma o conteúdo de vídeos de forma clara e objetiva, sempre no formato pedido."
	summaryPromptText = "Analise a transcrição do vídeo \"%s\" abaixo e produza:\n\n" +
		"RESUMO:\n(um parágrafo executivo de até 4 frases)\n\n" +
		"PONTOS-CHAVE:\n(exatamente 5 itens, um por linha, iniciados por \"-\")\n\n" +
		"Transcrição:\n%s"
)

// Summarizer derives a ContentSummary from transcript text. Errors never
// propagate: every failure path degrades to the local fallback so the
// pipeline completes without the external service.
type Summarizer struct {
	llm    ports.ChatCompleter // nil when no credential is configured
	logger *log.Logger
}

// NewSummarizer creates a Summarizer. A nil completer selects the local
// fallback path unconditionally.
func NewSummarizer(llm ports.ChatCompleter, logger *log.Logger) *Summarizer {
	return &Summarizer{llm: llm, logger: logger}
}

// Summarize produces a summary and 1-5 key points for the given source
// text (transcript, or title in the simplified flow).
func (s *Summarizer) Summarize(ctx context.Context, source, title string) domain.ContentSummary {
	if s.llm == nil || source == "" {
		return Fallback(title)
	}

	raw, err := s.llm.Complete(ctx, ports.CompletionRequest{
		System:      summarySystemTxt,
		User:        fmt.Sprintf(summaryPromptText, title, truncate(source, maxSourceChars)),
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemp,
	})
	if err != nil {
		s.logger.Printf("summarization failed, using local fallback: %v", err)
		return Fallback(title)
	}

	parsed := ParseResponse(raw)
	if parsed.Summary == "" {
		s.logger.Printf("summarization response had no RESUMO section, using local fallback")
		return Fallback(title)
	}
	return parsed
}

// Fallback is the deterministic local summary used when the
// generative-language service is unconfigured or fails.
func Fallback(title string) domain.ContentSummary {
	return domain.ContentSummary{
		Summary: fmt.Sprintf("Resumo automático de \"%s\": o vídeo apresenta o tema principal, "+
			"destaca os benefícios para o público e convida o espectador a conhecer a oferta.", title),
		KeyPoints: []string{
			"Conteúdo relevante para o público-alvo",
			"Linguagem adequada para redes sociais",
			"Mensagem com foco em benefícios",
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
