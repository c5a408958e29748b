package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer implements Synthesizer using the OpenAI speech API.
type OpenAISynthesizer struct {
	client *openai.Client
	voice  openai.SpeechVoice
}

// NewOpenAISynthesizer creates a TTS client. voice may be empty for the
// default.
func NewOpenAISynthesizer(apiKey string, voice string) (*OpenAISynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	v := openai.VoiceAlloy
	if voice != "" {
		v = openai.SpeechVoice(voice)
	}
	return &OpenAISynthesizer{
		client: openai.NewClient(apiKey),
		voice:  v,
	}, nil
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) (*Audio, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: s.voice,
	})
	if err != nil {
		return nil, fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech audio: %w", err)
	}

	return &Audio{Data: data, Format: "mp3"}, nil
}
