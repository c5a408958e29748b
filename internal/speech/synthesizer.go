// Package speech is the text-to-speech capability. Synthesis failures
// degrade to synthetic playback: captions and state still advance, just
// without audio.
package speech

import "context"

// Audio is one synthesized narration clip.
type Audio struct {
	// Data is the encoded audio, empty for synthetic playback.
	Data []byte

	// Format is the container/codec of Data, e.g. "mp3". Empty for
	// synthetic playback.
	Format string

	// Synthetic is true when no audio was produced and the host should
	// advance captions on a timer instead.
	Synthetic bool

	// EstimatedMillis is the suggested caption display time for
	// synthetic playback.
	EstimatedMillis int
}

// Synthesizer converts narration text to audio. Implementations must
// honor context cancellation so a learner's skip aborts promptly.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (*Audio, error)
}
