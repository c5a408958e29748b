package speech

import (
	"context"
	"strings"
)

// wordsPerMinute approximates a calm tutoring pace for caption timing.
const wordsPerMinute = 150

// SyntheticSynthesizer produces no audio; it returns timing hints so the
// host can advance captions as if narration had played. Used when no TTS
// backend is configured and as the fallback after a TTS failure.
type SyntheticSynthesizer struct{}

func (SyntheticSynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Audio{
		Synthetic:       true,
		EstimatedMillis: EstimateMillis(text),
	}, nil
}

// EstimateMillis estimates how long text would take to speak.
func EstimateMillis(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return words * 60_000 / wordsPerMinute
}

// WithFallback wraps a primary synthesizer so failures degrade to
// synthetic playback instead of propagating. Context cancellation still
// propagates, so skips abort cleanly.
type WithFallback struct {
	Primary Synthesizer
}

func (w WithFallback) Synthesize(ctx context.Context, text string) (*Audio, error) {
	if w.Primary == nil {
		return SyntheticSynthesizer{}.Synthesize(ctx, text)
	}
	audio, err := w.Primary.Synthesize(ctx, text)
	if err == nil {
		return audio, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return SyntheticSynthesizer{}.Synthesize(ctx, text)
}
