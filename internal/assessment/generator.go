// Package assessment builds the fixed-size, type-blended worksheet and test
// arrays a session iterates over. Blending targets 80% primary types (mc, tf)
// to 20% secondary (sa, fill-in-blank), with an additional ~30% word-problem
// share for numeric lessons.
package assessment

import (
	"strings"

	"github.com/tutorflow/engine/internal/content"
	"github.com/tutorflow/engine/internal/deck"
)

// SecondaryShare is the target fraction of secondary-type questions.
const SecondaryShare = 0.2

// WordProblemShare is the target fraction drawn from the word-problem pool
// for numeric lessons.
const WordProblemShare = 0.3

// Options tunes a single Generate call.
type Options struct {
	// Seed questions are reserved outright, ahead of the type blend; the
	// blend applies to the remaining target. Typically previously reserved
	// word problems.
	Seed []content.Question
}

// Result holds the generated worksheet and test for one session.
type Result struct {
	Worksheet []content.Question
	Test      []content.Question
}

// GeneratePair produces the worksheet and test arrays for a lesson. When
// numeric is true, roughly WordProblemShare of each array is reserved from
// the word-problem deck and the type blend applies only to the remainder.
// The word-problem deck spans both arrays so a problem never appears twice
// in the session.
func GeneratePair(lc *content.LessonContent, worksheetSize, testSize int, numeric bool) Result {
	wpDeck := deck.New(lc.TaggedWordProblems())

	return Result{
		Worksheet: generateOne(lc, worksheetSize, numeric, wpDeck),
		Test:      generateOne(lc, testSize, numeric, wpDeck),
	}
}

func generateOne(lc *content.LessonContent, target int, numeric bool, wpDeck *deck.Deck[content.Question]) []content.Question {
	var seed []content.Question
	if numeric && wpDeck.Remaining() > 0 {
		seed = wpDeck.Draw(roundShare(target, WordProblemShare))
	}
	return Generate(lc, target, Options{Seed: seed})
}

// Generate returns min(target, totalAvailableAfterDedup) questions blended
// per the type-mix policy. It never fails: empty banks fall back to any
// legacy flat arrays in the content, and a short pool yields a smaller
// array rather than an error.
func Generate(lc *content.LessonContent, target int, opts Options) []content.Question {
	if lc == nil || target <= 0 {
		return nil
	}

	pool := lc.Banks()
	if len(pool) == 0 && len(opts.Seed) == 0 {
		if lc.BanksEmpty() {
			return legacyFallback(lc, target)
		}
		// Only the word-problem bank has content; blend over it directly.
		pool = lc.TaggedWordProblems()
	}

	// Shuffle before blending so repeat generations vary which questions
	// are selected, not just their order within the array.
	selected := blend(shuffled(pool), opts.Seed, target)
	return shuffled(selected)
}

// blend reserves the seed first, then applies the 80/20 partition targets
// to the remaining slots. Spillover policy: a partition shortfall is filled
// from the other partition's leftovers, so the requested total is hit
// exactly whenever enough questions exist.
func blend(pool, seed []content.Question, target int) []content.Question {
	seen := make(map[string]bool)

	// Seed takes dedup precedence over the general pool.
	seed = dedupe(seed, seen)
	pool = dedupe(pool, seen)

	if len(seed) > target {
		seed = seed[:target]
	}
	rest := target - len(seed)

	secTarget := roundShare(rest, SecondaryShare)
	priTarget := rest - secTarget

	poolPri, poolSec := partition(pool)

	pri := take(poolPri, priTarget)
	poolPri = poolPri[len(pri):]
	sec := take(poolSec, secTarget)
	poolSec = poolSec[len(sec):]

	// Spill over when one partition came up short.
	if shortfall := secTarget - len(sec); shortfall > 0 {
		sec = append(sec, take(poolPri, shortfall)...)
	}
	if shortfall := priTarget - len(pri); shortfall > 0 {
		pri = append(pri, take(poolSec, shortfall)...)
	}

	out := make([]content.Question, 0, len(seed)+len(pri)+len(sec))
	out = append(out, seed...)
	out = append(out, pri...)
	out = append(out, sec...)
	if len(out) > target {
		out = out[:target]
	}
	return out
}

// legacyFallback serves pre-built flat arrays when every bank is empty.
// Worksheet entries are preferred, topped up from the legacy test array.
func legacyFallback(lc *content.LessonContent, target int) []content.Question {
	seen := make(map[string]bool)
	flat := dedupe(lc.LegacyWorksheet, seen)
	flat = append(flat, dedupe(lc.LegacyTest, seen)...)
	if len(flat) > target {
		flat = flat[:target]
	}
	return shuffled(flat)
}

// partition splits questions into primary (mc, tf) and secondary (sa).
func partition(qs []content.Question) (primary, secondary []content.Question) {
	for _, q := range qs {
		switch q.QuestionType {
		case content.TypeMultipleChoice, content.TypeTrueFalse:
			primary = append(primary, q)
		default:
			secondary = append(secondary, q)
		}
	}
	return primary, secondary
}

// dedupe drops questions whose normalized prompt was already seen. A
// question appearing in multiple banks must not be selected twice.
func dedupe(qs []content.Question, seen map[string]bool) []content.Question {
	var out []content.Question
	for _, q := range qs {
		key := NormalizePrompt(q.Prompt)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

// NormalizePrompt is the dedup key for a question: trimmed, lowercased,
// inner whitespace collapsed.
func NormalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}

func take(qs []content.Question, n int) []content.Question {
	if n <= 0 {
		return nil
	}
	if n > len(qs) {
		n = len(qs)
	}
	return qs[:n]
}

// shuffled returns a crypto-seeded shuffle of qs via a throwaway deck.
func shuffled(qs []content.Question) []content.Question {
	return deck.New(qs).Draw(len(qs))
}

// roundShare returns share*total rounded to nearest.
func roundShare(total int, share float64) int {
	return int(float64(total)*share + 0.5)
}
