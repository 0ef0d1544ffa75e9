package recognizers

import (
	"sort"
	"unicode"

	"golang.org/x/text/language"

	"confirmbot/internal/ports/output"
)

var _ output.BooleanRecognizer = (*BooleanRecognizer)(nil)

// phrases lists the yes and no answers of one language. hedge holds replies
// that neither accept nor decline; negators flip a yes that follows them.
type phrases struct {
	yes, no, hedge []string
	negators       []string
}

// booleanPhrases is keyed by base language. Phrases are stored unnormalized.
var booleanPhrases = map[string]phrases{
	"en": {
		yes:      []string{"yes", "y", "yeah", "yep", "yup", "sure", "ok", "okay", "of course", "certainly", "absolutely", "agree", "agreed", "true", "correct"},
		no:       []string{"no", "n", "nope", "nah", "not ok", "not okay", "no way", "never", "disagree", "false", "wrong", "don't agree", "do not agree"},
		hedge:    []string{"not sure", "unsure", "not certain", "maybe", "perhaps", "i don't know", "don't know", "dunno", "no idea"},
		negators: []string{"not", "don't", "dont", "do not", "never", "isn't", "doesn't", "didn't", "can't", "cannot", "won't", "wouldn't", "hardly"},
	},
	"es": {
		yes:      []string{"sí", "si", "claro", "vale", "de acuerdo", "por supuesto", "correcto", "ok"},
		no:       []string{"no", "nunca", "para nada", "de ninguna manera", "incorrecto"},
		hedge:    []string{"no sé", "no estoy seguro", "no estoy segura", "quizás", "quizá", "tal vez"},
		negators: []string{"no", "nunca", "jamás", "tampoco"},
	},
	"nl": {
		yes:      []string{"ja", "jazeker", "zeker", "prima", "akkoord", "goed", "ok"},
		no:       []string{"nee", "neen", "nooit", "niet akkoord", "geen"},
		hedge:    []string{"niet zeker", "weet niet", "weet ik niet", "misschien"},
		negators: []string{"niet", "geen", "nooit"},
	},
	"fr": {
		yes:      []string{"oui", "ouais", "bien sûr", "d'accord", "ok", "exact", "certainement"},
		no:       []string{"non", "nan", "pas du tout", "jamais", "pas d'accord"},
		hedge:    []string{"pas sûr", "pas sûre", "pas certain", "je ne sais pas", "sais pas", "peut-être"},
		negators: []string{"pas", "jamais", "non"},
	},
	"de": {
		yes:      []string{"ja", "jawohl", "klar", "genau", "sicher", "einverstanden", "ok"},
		no:       []string{"nein", "nee", "nö", "niemals", "auf keinen fall", "nicht einverstanden"},
		hedge:    []string{"nicht sicher", "weiß nicht", "weiß ich nicht", "vielleicht"},
		negators: []string{"nicht", "kein", "keine", "nie", "niemals"},
	},
	"ja": {
		yes:   []string{"はい", "ええ", "うん", "そうです", "いいよ", "了解", "オッケー", "ok"},
		no:    []string{"いいえ", "いえ", "いや", "ううん", "だめ", "ダメ", "違います"},
		hedge: []string{"わからない", "分からない", "わかりません", "分かりません", "たぶん", "多分"},
	},
	"pt": {
		yes:      []string{"sim", "claro", "certo", "com certeza", "pode ser", "ok"},
		no:       []string{"não", "nao", "nunca", "de jeito nenhum"},
		hedge:    []string{"não sei", "não tenho certeza", "talvez"},
		negators: []string{"não", "nunca", "nem"},
	},
	"zh": {
		yes:      []string{"是的", "是", "好的", "好", "对", "可以", "行", "没问题"},
		no:       []string{"不", "不是", "不要", "不行", "否", "没有", "不对"},
		hedge:    []string{"不确定", "不知道", "也许", "可能吧"},
		negators: []string{"不", "没", "别"},
	},
}

// emojiPhrases are understood in every locale.
var emojiPhrases = phrases{
	yes: []string{"👍", "👌", "✅", "✔"},
	no:  []string{"👎", "❌", "✖"},
}

type answer int

const (
	answerYes answer = iota
	answerNo
	answerHedge
)

type compiledPhrase struct {
	runes  []rune
	answer answer
}

type compiledTable struct {
	phrases  []compiledPhrase
	negators [][]rune
}

// BooleanRecognizer spots yes/no phrases using per-language keyword tables.
type BooleanRecognizer struct {
	tables map[string]compiledTable
}

func NewBooleanRecognizer() *BooleanRecognizer {
	r := &BooleanRecognizer{tables: make(map[string]compiledTable, len(booleanPhrases))}
	for lang, p := range booleanPhrases {
		r.tables[lang] = compile(p, emojiPhrases)
	}
	return r
}

func compile(sets ...phrases) compiledTable {
	var t compiledTable
	seen := map[string]bool{}
	add := func(list []string, a answer) {
		for _, s := range list {
			n := normalize(s)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			t.phrases = append(t.phrases, compiledPhrase{runes: []rune(n), answer: a})
		}
	}
	for _, p := range sets {
		add(p.yes, answerYes)
		add(p.no, answerNo)
		add(p.hedge, answerHedge)
		for _, neg := range p.negators {
			if n := normalize(neg); n != "" {
				t.negators = append(t.negators, []rune(n))
			}
		}
	}
	return t
}

func (r *BooleanRecognizer) table(locale string) compiledTable {
	base, _ := language.Make(locale).Base()
	if t, ok := r.tables[base.String()]; ok {
		return t
	}
	return r.tables["en"]
}

// negated reports whether the yes phrase starting at start is preceded by a
// negator, directly or with one word in between ("not really sure").
func (t compiledTable) negated(text []rune, start int) bool {
	before := text[:start]
	for _, neg := range t.negators {
		if isCJK(neg[0]) && hasRuneSuffix(before, neg) {
			return true
		}
	}

	i := len(before)
	for words := 0; words < 2; words++ {
		for i > 0 && unicode.IsSpace(before[i-1]) {
			i--
		}
		end := i
		for i > 0 && isWordRune(before[i-1]) {
			i--
		}
		if i == end {
			return false
		}
		// Multi-word negators such as "do not" end with a word of their own.
		for _, neg := range t.negators {
			if hasRuneSuffix(before[:end], neg) && (end-len(neg) == 0 || !isWordRune(before[end-len(neg)-1])) {
				return true
			}
		}
	}
	return false
}

func hasRuneSuffix(s, suffix []rune) bool {
	return len(s) >= len(suffix) && equalRunes(s[len(s)-len(suffix):], suffix)
}

// RecognizeBoolean returns non-overlapping matches in text order. Where
// phrases overlap the earliest, then longest, wins, so "not ok" beats "ok".
// A yes preceded by a negator reads as no. When the reply hedges, or holds
// both a yes and a no, every candidate is returned unresolved.
func (r *BooleanRecognizer) RecognizeBoolean(text, locale string) []output.BooleanCandidate {
	norm := []rune(normalize(text))
	if len(norm) == 0 {
		return nil
	}

	table := r.table(locale)
	type hit struct {
		span
		answer answer
	}
	var hits []hit
	for _, p := range table.phrases {
		for _, s := range findPhrase(norm, p.runes) {
			hits = append(hits, hit{span: s, answer: p.answer})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].start != hits[j].start {
			return hits[i].start < hits[j].start
		}
		return hits[i].end-hits[i].start > hits[j].end-hits[j].start
	})

	var kept []hit
	last := -1
	for _, h := range hits {
		if h.start < last {
			continue
		}
		last = h.end
		if h.answer == answerYes && table.negated(norm, h.start) {
			h.answer = answerNo
		}
		kept = append(kept, h)
	}

	seen := map[answer]bool{}
	for _, h := range kept {
		seen[h.answer] = true
	}
	ambiguous := seen[answerHedge] || (seen[answerYes] && seen[answerNo])

	out := make([]output.BooleanCandidate, 0, len(kept))
	for _, h := range kept {
		c := output.BooleanCandidate{
			Text:  string(norm[h.start:h.end]),
			Start: h.start,
			End:   h.end,
		}
		if !ambiguous {
			c.Resolution = &output.BooleanResolution{
				Value: h.answer == answerYes,
				Score: float64(h.end-h.start) / float64(len(norm)),
			}
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
