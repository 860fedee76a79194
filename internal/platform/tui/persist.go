package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteor-ascent/internal/shooter"
	"github.com/vovakirdan/meteor-ascent/internal/storage"
)

// saveTimeout bounds every database call made from the UI.
const saveTimeout = 2 * time.Second

// savedMsg reports the outcome of a background write.
type savedMsg struct {
	what  string
	runID string
	err   error
}

// LoadProgress reads a profile's record. Missing or malformed records fall
// back to the defaults; the error is returned for logging only.
func LoadProgress(store *storage.Store, profile string) (shooter.Progress, error) {
	if store == nil {
		return shooter.DefaultProgress(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	kv, err := store.LoadProgress(ctx, profile)
	if err != nil {
		return shooter.DefaultProgress(), err
	}
	if len(kv) == 0 {
		return shooter.DefaultProgress(), nil
	}
	return shooter.DecodeProgress(kv)
}

// saveProgressCmd writes the record in the background.
func saveProgressCmd(store *storage.Store, profile string, p shooter.Progress) tea.Cmd {
	if store == nil {
		return nil
	}
	kv := p.Encode()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		return savedMsg{what: "progress", err: store.SaveProgress(ctx, profile, kv)}
	}
}

// saveScoreCmd records a finished run in the score history.
func saveScoreCmd(store *storage.Store, entry storage.ScoreEntry) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		id, err := store.SaveScore(ctx, entry)
		return savedMsg{what: "score", runID: id, err: err}
	}
}

func logSaved(logger *log.Logger, msg savedMsg) {
	if msg.err != nil {
		logger.Error("save failed", "what", msg.what, "error", msg.err)
		return
	}
	logger.Debug("saved", "what", msg.what, "run", msg.runID)
}
