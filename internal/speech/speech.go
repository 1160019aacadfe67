// Package speech turns prompt and cue text into playable audio via Amazon
// Polly. Synthesis is best-effort: sessions run silently when no AWS
// credentials are configured, so the synthesizer is constructed disabled
// rather than failing startup.
package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// DefaultVoice is used when no voice preference is configured.
const DefaultVoice = "Joanna"

// Synthesizer produces an MP3 file for a piece of text and returns its path.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
	Enabled() bool
}

// PollySynthesizer synthesizes speech with Amazon Polly's neural engine and
// caches the result on disk, keyed by voice and text.
type PollySynthesizer struct {
	client   *polly.Client
	voice    types.VoiceId
	audioDir string
}

// Options configures a PollySynthesizer.
type Options struct {
	Region   string // empty uses the SDK's default resolution
	Voice    string // Polly voice id, empty uses DefaultVoice
	AudioDir string // cache directory for synthesized MP3s
}

// DefaultAudioDir returns the MP3 cache location:
// $XDG_CACHE_HOME/rekindle/audio, falling back to ~/.cache/rekindle/audio.
func DefaultAudioDir() (string, error) {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, "rekindle", "audio"), nil
}

// NewPollySynthesizer builds a synthesizer from the ambient AWS
// configuration.
func NewPollySynthesizer(ctx context.Context, opts Options) (*PollySynthesizer, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	voice := opts.Voice
	if voice == "" {
		voice = DefaultVoice
	}
	if err := os.MkdirAll(opts.AudioDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}

	return &PollySynthesizer{
		client:   polly.NewFromConfig(cfg),
		voice:    types.VoiceId(voice),
		audioDir: opts.AudioDir,
	}, nil
}

// Enabled reports whether synthesis requests will be made.
func (s *PollySynthesizer) Enabled() bool { return true }

// Synthesize returns the path to an MP3 for the text, synthesizing it if it
// is not already cached.
func (s *PollySynthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty text")
	}

	path := filepath.Join(s.audioDir, cacheFilename(string(s.voice), text))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	out, err := s.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      s.voice,
		Engine:       types.EngineNeural,
	})
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}
	defer out.AudioStream.Close()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, out.AudioStream); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return path, nil
}

// cacheFilename derives a stable, filesystem-safe name for a voice + text
// pair. Long texts are truncated; the hash keeps truncated names distinct.
func cacheFilename(voice, text string) string {
	slug := strings.ToLower(text)
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	if len(slug) > 48 {
		slug = slug[:48]
	}
	return fmt.Sprintf("%s_%s_%08x.mp3", strings.ToLower(voice), slug, hash(text))
}

// hash is FNV-1a over the full text.
func hash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

// Disabled is the no-op synthesizer used when speech is turned off or AWS
// configuration is absent.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Synthesize(context.Context, string) (string, error) {
	return "", fmt.Errorf("speech synthesis disabled")
}
