package copytext

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"copygen/internal/core/domain"
	"copygen/internal/core/ports"
)

const (
	generateMaxTokens   = 2500
	generateTemperature = 0.8
	maxSourceChars      = 12000
)

// Generator produces copy candidates for a template, from transcript text
// or, in the simplified flow, from the video title alone. Output shape is
// identical regardless of backend availability: exactly VariantCount
// candidates, falling back to the template's fixed examples whenever the
// backend is unconfigured, fails, or returns nothing parseable.
type Generator struct {
	llm    ports.ChatCompleter // nil when no credential is configured
	logger *log.Logger
}

// NewGenerator creates a Generator. A nil completer selects the local
// fallback variants unconditionally.
func NewGenerator(llm ports.ChatCompleter, logger *log.Logger) *Generator {
	return &Generator{llm: llm, logger: logger}
}

// Generate returns exactly VariantCount unscored variants. An unknown
// template ID is the only error, raised before any external call.
func (g *Generator) Generate(ctx context.Context, source, templateID string, hints domain.CopyHints) ([]domain.CopyVariant, error) {
	tpl, err := Lookup(templateID)
	if err != nil {
		return nil, err
	}

	texts := tpl.Fallback[:]
	if g.llm != nil {
		raw, err := g.llm.Complete(ctx, ports.CompletionRequest{
			System:      tpl.System,
			User:        buildUserPrompt(tpl, source, hints),
			MaxTokens:   generateMaxTokens,
			Temperature: generateTemperature,
		})
		switch {
		case err != nil:
			g.logger.Printf("copy generation failed for template %s, using fallback variants: %v", templateID, err)
		default:
			parsed := ParseVariants(raw, VariantCount)
			if len(parsed) == 0 {
				g.logger.Printf("no variants parsed from model output for template %s, using fallback variants", templateID)
			} else {
				// Top up short responses from the fixed examples so the
				// output contract always holds.
				for _, fb := range tpl.Fallback {
					if len(parsed) == VariantCount {
						break
					}
					parsed = append(parsed, fb)
				}
				texts = parsed
			}
		}
	}

	variants := make([]domain.CopyVariant, 0, VariantCount)
	for _, text := range texts {
		variants = append(variants, domain.CopyVariant{
			ID:   uuid.New().String(),
			Text: text,
		})
	}
	return variants, nil
}

func buildUserPrompt(tpl Template, source string, hints domain.CopyHints) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Com base no conteúdo abaixo, escreva exatamente %d variações de %s.\n", VariantCount, strings.ToLower(tpl.Label))
	b.WriteString("Responda apenas com uma lista numerada de 1 a 5, uma variação por linha.\n")
	if hints.Tone != "" {
		fmt.Fprintf(&b, "Tom desejado: %s.\n", hints.Tone)
	}
	if hints.Audience != "" {
		fmt.Fprintf(&b, "Público-alvo: %s.\n", hints.Audience)
	}
	b.WriteString("\nConteúdo:\n")
	if len(source) > maxSourceChars {
		source = source[:maxSourceChars]
	}
	b.WriteString(source)
	return b.String()
}
