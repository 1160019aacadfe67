package speech

import (
	"context"
	"os/exec"
	"path/filepath"
)

// playerCommands are tried in order when looking for an MP3 player binary.
var playerCommands = []string{"afplay", "mpg123", "ffplay"}

// Speaker synthesizes text and plays it through a local audio player.
// Playback is best-effort: a missing player or a failed synthesis makes
// Say a silent no-op rather than an error the session has to handle.
type Speaker struct {
	synth  Synthesizer
	player string
}

// NewSpeaker pairs a synthesizer with whichever player binary is installed.
func NewSpeaker(synth Synthesizer) *Speaker {
	s := &Speaker{synth: synth}
	for _, cmd := range playerCommands {
		if p, err := exec.LookPath(cmd); err == nil {
			s.player = p
			break
		}
	}
	return s
}

// Enabled reports whether Say will actually produce audio.
func (s *Speaker) Enabled() bool {
	return s.synth != nil && s.synth.Enabled() && s.player != ""
}

// Say synthesizes and plays text, blocking until playback finishes.
func (s *Speaker) Say(ctx context.Context, text string) error {
	if !s.Enabled() {
		return nil
	}
	path, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	args := []string{path}
	if filepath.Base(s.player) == "ffplay" {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}
	return exec.CommandContext(ctx, s.player, args...).Run()
}
