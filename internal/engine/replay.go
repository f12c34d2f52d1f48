package engine

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Replay is a recorded game: sequential state snapshots with a cursor
// for playback.
type Replay struct {
	GameID       string
	States       []*StateSnapshot
	CurrentIndex int
	mu           sync.RWMutex
}

// NewReplay creates an empty replay for a game.
func NewReplay(gameID string) *Replay {
	return &Replay{GameID: gameID}
}

// RecordState appends a snapshot.
func (r *Replay) RecordState(snap *StateSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.States = append(r.States, snap)
}

// Start resets the cursor to the beginning.
func (r *Replay) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CurrentIndex = 0
}

// Next returns the snapshot at the cursor and advances it, or nil at
// the end.
func (r *Replay) Next() *StateSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex < len(r.States) {
		snap := r.States[r.CurrentIndex]
		r.CurrentIndex++
		return snap
	}
	return nil
}

// Previous steps the cursor back and returns that snapshot, or nil at
// the start.
func (r *Replay) Previous() *StateSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CurrentIndex > 0 {
		r.CurrentIndex--
		return r.States[r.CurrentIndex]
	}
	return nil
}

// Skip moves the cursor forward or backward by count, clamped to the
// recorded range, and returns the snapshot there.
func (r *Replay) Skip(count int) *StateSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.CurrentIndex + count
	if idx >= len(r.States) {
		idx = len(r.States) - 1
	}
	if idx < 0 {
		idx = 0
	}
	r.CurrentIndex = idx
	if idx < len(r.States) {
		return r.States[idx]
	}
	return nil
}

// Size returns the number of recorded snapshots.
func (r *Replay) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.States)
}

// StateAt returns the snapshot at index, or nil out of range.
func (r *Replay) StateAt(index int) *StateSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index >= 0 && index < len(r.States) {
		return r.States[index]
	}
	return nil
}

// replayMetadata heads a saved replay file.
type replayMetadata struct {
	GameID     string
	Timestamp  time.Time
	Version    int
	StateCount int
}

const replayVersion = 1

// SaveToFile writes the replay as a gzipped gob stream named
// <gameID>.replay under directory.
func (r *Replay) SaveToFile(directory string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := os.MkdirAll(directory, 0o755); err != nil {
		return fmt.Errorf("create replay directory: %w", err)
	}
	file, err := os.Create(filepath.Join(directory, r.GameID+".replay"))
	if err != nil {
		return fmt.Errorf("create replay file: %w", err)
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	defer zw.Close()
	enc := gob.NewEncoder(zw)

	meta := replayMetadata{
		GameID:     r.GameID,
		Timestamp:  time.Now(),
		Version:    replayVersion,
		StateCount: len(r.States),
	}
	if err := enc.Encode(&meta); err != nil {
		return fmt.Errorf("encode replay metadata: %w", err)
	}
	for i, snap := range r.States {
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("encode snapshot %d: %w", i, err)
		}
	}
	return nil
}

// LoadReplayFromFile reads a replay saved by SaveToFile.
func LoadReplayFromFile(directory, gameID string) (*Replay, error) {
	file, err := os.Open(filepath.Join(directory, gameID+".replay"))
	if err != nil {
		return nil, fmt.Errorf("open replay file: %w", err)
	}
	defer file.Close()

	zr, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("read replay file: %w", err)
	}
	defer zr.Close()
	dec := gob.NewDecoder(zr)

	var meta replayMetadata
	if err := dec.Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode replay metadata: %w", err)
	}
	if meta.Version != replayVersion {
		return nil, fmt.Errorf("unsupported replay version %d", meta.Version)
	}

	replay := NewReplay(meta.GameID)
	for i := 0; i < meta.StateCount; i++ {
		var snap StateSnapshot
		if err := dec.Decode(&snap); err != nil {
			return nil, fmt.Errorf("decode snapshot %d: %w", i, err)
		}
		replay.States = append(replay.States, &snap)
	}
	return replay, nil
}

// Recorder tracks replays for running games and saves them on demand.
type Recorder struct {
	logger  *zap.Logger
	saveDir string

	mu      sync.RWMutex
	replays map[string]*Replay
	enabled map[string]bool
}

// NewRecorder creates a recorder saving under saveDir. A nil logger
// disables logging.
func NewRecorder(logger *zap.Logger, saveDir string) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		logger:  logger,
		saveDir: saveDir,
		replays: make(map[string]*Replay),
		enabled: make(map[string]bool),
	}
}

// StartRecording begins recording a game.
func (rec *Recorder) StartRecording(gameID string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.replays[gameID] = NewReplay(gameID)
	rec.enabled[gameID] = true
	rec.logger.Info("started replay recording", zap.String("game_id", gameID))
}

// StopRecording stops recording a game, keeping the replay in memory.
func (rec *Recorder) StopRecording(gameID string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.enabled[gameID] = false
}

// IsRecording reports whether the game is being recorded.
func (rec *Recorder) IsRecording(gameID string) bool {
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.enabled[gameID]
}

// RecordState appends a snapshot when recording is enabled.
func (rec *Recorder) RecordState(gameID string, snap *StateSnapshot) {
	rec.mu.RLock()
	enabled := rec.enabled[gameID]
	replay := rec.replays[gameID]
	rec.mu.RUnlock()
	if !enabled || replay == nil {
		return
	}
	replay.RecordState(snap)
}

// Replay returns the in-memory replay for a game.
func (rec *Recorder) Replay(gameID string) (*Replay, bool) {
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	replay, ok := rec.replays[gameID]
	return replay, ok
}

// Save writes the game's replay to disk and drops it from memory.
func (rec *Recorder) Save(gameID string) error {
	rec.mu.Lock()
	replay, ok := rec.replays[gameID]
	if !ok {
		rec.mu.Unlock()
		return fmt.Errorf("no replay recorded for game %s", gameID)
	}
	delete(rec.replays, gameID)
	delete(rec.enabled, gameID)
	rec.mu.Unlock()

	if err := replay.SaveToFile(rec.saveDir); err != nil {
		return err
	}
	rec.logger.Info("saved replay",
		zap.String("game_id", gameID),
		zap.Int("state_count", replay.Size()),
		zap.String("directory", rec.saveDir))
	return nil
}

// Load reads a replay from disk.
func (rec *Recorder) Load(gameID string) (*Replay, error) {
	return LoadReplayFromFile(rec.saveDir, gameID)
}

// Clear drops a replay from memory without saving.
func (rec *Recorder) Clear(gameID string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	delete(rec.replays, gameID)
	delete(rec.enabled, gameID)
}
