// Package copytext holds the copy template catalog, the model-output
// parser, the copy generator, and the quality scoring heuristic.
package copytext

import (
	"sort"

	"copygen/internal/core/domain"
)

// TemplateFacebookAd and friends are the fixed template catalog. Each ID
// maps to a distinct system prompt oriented toward one copy format.
const (
	TemplateFacebookAd         = "facebook-ad"
	TemplateEmailSubject       = "email-subject"
	TemplateProductDescription = "product-description"
	TemplateBlogTitle          = "blog-title"
	TemplateLandingHeadline    = "landing-headline"
)

// VariantCount is the number of copy candidates every generation returns,
// regardless of backend availability.
const VariantCount = 5

// Template couples a copy format's system prompt with its fixed local
// example variants, used whenever the generative backend is unconfigured
// or fails.
type Template struct {
	ID       string
	Label    string
	System   string
	Fallback [VariantCount]string
}

var catalog = map[string]Template{
	TemplateFacebookAd: {
		ID:    TemplateFacebookAd,
		Label: "Anúncio para redes sociais",
		System: "Você é um copywriter especialista em anúncios de resposta direta para redes sociais. " +
			"Escreva textos curtos e persuasivos, com chamada para ação clara, gatilhos de urgência e prova social. " +
			"Use no máximo 2 emojis por texto e nunca mencione o nome da plataforma.",
		Fallback: [VariantCount]string{
			"🚀 Transforme seus resultados hoje! Mais de 1000+ clientes já aprovaram. Garanta sua vaga agora!",
			"Você quer vender mais? Aproveite 30% de desconto só hoje. Clique e comece já!",
			"⏰ Últimas unidades disponíveis! Compre agora com garantia de 30 dias e frete grátis.",
			"Descubra o método que já ajudou 500+ pessoas. Acesse agora e ganhe um bônus exclusivo!",
			"Oferta por tempo limitado: adquira já com desconto especial e devolução garantida. Não perca!",
		},
	},
	TemplateEmailSubject: {
		ID:    TemplateEmailSubject,
		Label: "Assunto de e-mail",
		System: "Você é um copywriter especialista em e-mail marketing. " +
			"Escreva linhas de assunto curtas (até 60 caracteres) que maximizem a taxa de abertura, " +
			"despertando curiosidade ou urgência sem parecer spam.",
		Fallback: [VariantCount]string{
			"Você vai perder essa oferta? Últimas horas ⏰",
			"Seu desconto exclusivo expira hoje",
			"O segredo que 1000+ clientes já descobriram",
			"Abra agora: bônus garantido para você",
			"Aproveite já: 30% off só até meia-noite",
		},
	},
	TemplateProductDescription: {
		ID:    TemplateProductDescription,
		Label: "Descrição de produto",
		System: "Você é um copywriter especialista em páginas de produto. " +
			"Escreva descrições orientadas a benefícios, com linguagem direta na segunda pessoa, " +
			"prova social e uma chamada para ação ao final.",
		Fallback: [VariantCount]string{
			"Economize tempo e melhore seus resultados com uma solução aprovada por 2000+ clientes. Garanta a sua hoje com devolução garantida!",
			"Você merece mais praticidade no dia a dia. Descubra o produto com garantia de 30 dias e frete grátis. Peça já!",
			"Qualidade testada e recomendada por especialistas. Aproveite o desconto de lançamento e compre agora sem risco.",
			"Transforme sua rotina com o produto que já conquistou milhares de clientes. Adquira hoje com oferta exclusiva!",
			"Feito para quem busca resultado: ganhe desempenho, economize dinheiro e compre com garantia total. Acesse já!",
		},
	},
	TemplateBlogTitle: {
		ID:    TemplateBlogTitle,
		Label: "Título de blog",
		System: "Você é um editor especialista em conteúdo para blogs. " +
			"Escreva títulos claros e atraentes, com promessa concreta de valor, " +
			"idealmente entre 40 e 70 caracteres.",
		Fallback: [VariantCount]string{
			"Descubra como você pode melhorar seus resultados ainda hoje",
			"7 estratégias comprovadas para aumentar suas vendas agora",
			"O guia completo para transformar seu negócio este ano",
			"Como 500+ empresas conseguiram crescer com este método",
			"Aprenda agora o passo a passo que garante mais conversões",
		},
	},
	TemplateLandingHeadline: {
		ID:    TemplateLandingHeadline,
		Label: "Headline de landing page",
		System: "Você é um copywriter especialista em páginas de conversão. " +
			"Escreva headlines de alto impacto com benefício principal explícito, " +
			"urgência sutil e credibilidade.",
		Fallback: [VariantCount]string{
			"Aumente suas vendas hoje com o método aprovado por 1000+ empresas. Comece agora!",
			"Você a um clique de transformar seus resultados. Garanta acesso com desconto exclusivo.",
			"Conquiste mais clientes agora, com garantia de satisfação ou seu dinheiro de volta.",
			"Descubra a plataforma que economiza seu tempo e melhora suas conversões. Experimente grátis!",
			"Resultados comprovados, oferta por tempo limitado. Acesse já e ganhe um bônus especial.",
		},
	},
}

// Lookup returns the template for an ID, or an UnknownTemplate error for
// IDs outside the catalog.
func Lookup(templateID string) (Template, error) {
	tpl, ok := catalog[templateID]
	if !ok {
		return Template{}, domain.UnknownTemplate(templateID)
	}
	return tpl, nil
}

// TemplateIDs returns the catalog's template IDs in sorted order.
func TemplateIDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
