package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/app"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/evaluate"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/exercise"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/items"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/speech"
	"github.com/fweiner/parrotsoftware-treatment-sub000/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startExercise, when set, drops straight into that exercise.
func runApp(cmd *cobra.Command, startExercise *exercise.Type) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	roster, err := loadRoster(cmd)
	if err != nil {
		return err
	}

	settings := evaluate.DefaultSettings()
	return app.Run(app.Options{
		Source:        items.NewSource(roster),
		EventRepo:     eventRepo,
		SnapshotRepo:  st.SnapshotRepo(),
		Speaker:       buildSpeaker(cmd.Context(), cmd),
		Settings:      &settings,
		StartExercise: startExercise,
	})
}

// loadRoster resolves and reads the roster file. A missing roster is not
// fatal: word finding uses a built-in stimulus bank, so the app still runs
// with the other exercises reporting what they need.
func loadRoster(cmd *cobra.Command) (*items.Roster, error) {
	path, _ := cmd.Flags().GetString("roster")
	if path == "" {
		var err error
		path, err = items.DefaultRosterPath()
		if err != nil {
			return nil, fmt.Errorf("resolve roster path: %w", err)
		}
	}

	roster, err := items.LoadRoster(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "No roster found at %s; personalized exercises need one.\n", path)
		return &items.Roster{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	return roster, nil
}

// buildSpeaker wires Polly synthesis with a local MP3 player. Any failure
// degrades to silent practice rather than blocking startup.
func buildSpeaker(ctx context.Context, cmd *cobra.Command) *speech.Speaker {
	if off, _ := cmd.Flags().GetBool("no-speech"); off {
		return speech.NewSpeaker(speech.Disabled{})
	}

	voice, _ := cmd.Flags().GetString("voice")
	if voice == "" {
		voice = os.Getenv("REKINDLE_VOICE")
	}

	audioDir, err := speech.DefaultAudioDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech unavailable:", err)
		return speech.NewSpeaker(speech.Disabled{})
	}

	synth, err := speech.NewPollySynthesizer(ctx, speech.Options{
		Voice:    voice,
		AudioDir: audioDir,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Speech unavailable:", err)
		fmt.Fprintln(os.Stderr, "Prompts will be shown on screen only.")
		return speech.NewSpeaker(speech.Disabled{})
	}
	return speech.NewSpeaker(synth)
}
