package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"courtroom/apperrors"
)

// DefaultTTSModel is the synthesis model used when the caller names none.
const DefaultTTSModel = "eleven_multilingual_v2"

// voiceIDs maps avatar ids to ElevenLabs voices.
var voiceIDs = map[int]string{
	1: "KnTv6RLzB4khP0x7xem1", // Berta
	2: "WLOYW6YwyA4c6LBQKJ36", // Andrew
	3: "l2xKdzGYYWPy0gKbjRXC", // Sophia
}

// VoiceForAvatar resolves an avatar id to a voice id, defaulting to avatar
// 1's voice for unrecognized ids.
func VoiceForAvatar(avatar int) string {
	if voice, ok := voiceIDs[avatar]; ok {
		return voice
	}
	return voiceIDs[1]
}

// SpeechSynthesizer converts text to audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, avatar int, modelVer string) ([]byte, error)
}

// TTSClient talks to the ElevenLabs text-to-speech API.
type TTSClient struct {
	APIKey string
	URL    string
	client *http.Client
}

func NewTTSClient(apiKey string) *TTSClient {
	return &TTSClient{
		APIKey: apiKey,
		URL:    "https://api.elevenlabs.io/v1/text-to-speech",
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Synthesize renders text with the avatar's voice and returns MP3 bytes.
func (c *TTSClient) Synthesize(ctx context.Context, text string, avatar int, modelVer string) ([]byte, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("elevenlabs API key: %w", apperrors.ErrConfigMissing)
	}
	if modelVer == "" {
		modelVer = DefaultTTSModel
	}

	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": modelVer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s?output_format=mp3_44100_128", c.URL, VoiceForAvatar(avatar))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w: %w", apperrors.ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis API error (%d): %s: %w", resp.StatusCode, string(body), apperrors.ErrUpstream)
	}
	return body, nil
}
