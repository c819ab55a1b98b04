package copytext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

// Copy-quality heuristic: an ordered rule table plus named combination
// bonuses. Pure and deterministic so identical (text, templateID) input
// always yields an identical score.

const (
	baseScore         = 50
	ctaAbsencePenalty = 15 // a call-to-action is necessary, not just desirable
)

type rule struct {
	name   string
	weight int
	match  func(text, lower string) bool
}

var (
	socialNumberPattern = regexp.MustCompile(`\d+\s*\+`)
	offerPricePattern   = regexp.MustCompile(`\d+\s*%|r\$\s*\d|\$\s*\d`)

	ctaWords = []string{
		"compre", "clique", "acesse", "garanta", "aproveite", "adquira",
		"baixe", "assine", "inscreva-se", "inscreva", "peça", "experimente",
		"comece", "saiba mais", "confira", "cadastre-se", "abra",
		"buy now", "shop now", "click", "order now", "sign up", "subscribe",
		"get started",
	}
	urgencyWords = []string{
		"agora", "hoje", "já", "imediatamente", "últimas horas",
		"última chance", "corra", "não perca", "expira", "meia-noite",
		"now", "today", "hurry", "last chance", "limited time",
	}
	scarcityWords = []string{
		"limitado", "limitada", "últimas unidades", "últimas vagas",
		"restam", "esgotando", "exclusivo", "exclusiva", "poucas unidades",
		"only", "few left", "while supplies last",
	}
	socialWords = []string{
		"clientes", "pessoas", "aprovado", "aprovaram", "recomendado",
		"avaliações", "depoimentos", "testado", "empresas", "milhares",
		"reviews", "customers", "users", "rated",
	}
	benefitWords = []string{
		"economize", "ganhe", "transforme", "melhore", "aumente",
		"descubra", "conquiste", "alcance", "aprenda",
		"save", "boost", "improve", "unlock", "discover", "grow",
	}
	secondPersonWords = []string{
		"você", "voce", "seu", "sua", "seus", "suas", "teu", "tua",
		"you", "your",
	}
	offerWords = []string{
		"oferta", "desconto", "promoção", "grátis", "gratuito", "frete",
		"bônus", "free", "deal", "sale",
	}
	guaranteeWords = []string{
		"garantia", "garantido", "garantida", "devolução", "reembolso",
		"sem risco", "satisfação", "guarantee", "money back", "risk free",
	}
)

var rules = []rule{
	{"emoji", 8, func(text, _ string) bool { return gomoji.ContainsEmoji(text) }},
	{"cta", 15, func(_, l string) bool { return hasWord(l, ctaWords) }},
	{"urgency", 12, func(_, l string) bool { return hasWord(l, urgencyWords) }},
	{"scarcity", 10, func(_, l string) bool { return hasWord(l, scarcityWords) }},
	{"social", 12, func(_, l string) bool {
		return socialNumberPattern.MatchString(l) || hasWord(l, socialWords)
	}},
	{"benefit", 10, func(_, l string) bool { return hasWord(l, benefitWords) }},
	{"second_person", 8, func(_, l string) bool { return hasWord(l, secondPersonWords) }},
	{"offer", 8, func(_, l string) bool {
		return offerPricePattern.MatchString(l) || hasWord(l, offerWords)
	}},
	{"guarantee", 7, func(_, l string) bool { return hasWord(l, guaranteeWords) }},
}

var combos = []struct {
	a, b  string
	bonus int
}{
	{"urgency", "scarcity", 5},
	{"social", "guarantee", 5},
	{"cta", "offer", 5},
}

// Score computes the 0-100 quality score for a copy text under a template.
func Score(text, templateID string) int {
	lower := strings.ToLower(text)
	score := baseScore

	hits := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.match(text, lower) {
			score += r.weight
			hits[r.name] = true
		}
	}
	if !hits["cta"] {
		score -= ctaAbsencePenalty
	}

	score += lengthAdjustment(text)

	for _, c := range combos {
		if hits[c.a] && hits[c.b] {
			score += c.bonus
		}
	}

	if templateID == TemplateFacebookAd {
		// Ads that name the platform read as spammy and get rejected more.
		if !strings.Contains(lower, "facebook") {
			score += 2
		}
		if hits["emoji"] && hits["social"] {
			score += 8
		}
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func lengthAdjustment(text string) int {
	n := utf8.RuneCountInString(text)
	switch {
	case n < 30:
		return -10
	case n >= 40 && n <= 200:
		return 5
	case n > 250:
		return -8
	default:
		return 0
	}
}

// hasWord reports whether any of words occurs in lower as a whole word.
// Substring matching alone would fire "agora" inside "agoraphobia"-style
// tokens, so both ends are checked for letter/digit neighbors.
func hasWord(lower string, words []string) bool {
	for _, w := range words {
		if matchWord(lower, w) {
			return true
		}
	}
	return false
}

func matchWord(lower, w string) bool {
	for idx := 0; ; {
		i := strings.Index(lower[idx:], w)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(w)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			return true
		}
		idx = end
	}
}

func boundaryBefore(s string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:start])
	return !isWordRune(r)
}

func boundaryAfter(s string, end int) bool {
	if end == len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
