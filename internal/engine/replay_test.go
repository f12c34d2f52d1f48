package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedReplay(turns int) *Replay {
	r := NewReplay("game-1")
	for i := 1; i <= turns; i++ {
		r.RecordState(&StateSnapshot{GameID: "game-1", Turn: i})
	}
	return r
}

func TestReplayCursor(t *testing.T) {
	r := recordedReplay(3)

	assert.Equal(t, 1, r.Next().Turn)
	assert.Equal(t, 2, r.Next().Turn)
	assert.Equal(t, 2, r.Previous().Turn)
	assert.Equal(t, 1, r.Previous().Turn)
	assert.Nil(t, r.Previous())

	r.Start()
	assert.Equal(t, 1, r.Next().Turn)
}

func TestReplaySkipClamps(t *testing.T) {
	r := recordedReplay(3)

	assert.Equal(t, 3, r.Skip(10).Turn)
	assert.Equal(t, 1, r.Skip(-10).Turn)
}

func TestReplayNextPastEnd(t *testing.T) {
	r := recordedReplay(1)
	require.NotNil(t, r.Next())
	assert.Nil(t, r.Next())
}

func TestReplaySaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	r := recordedReplay(4)
	require.NoError(t, r.SaveToFile(dir))

	loaded, err := LoadReplayFromFile(dir, "game-1")
	require.NoError(t, err)
	require.Equal(t, 4, loaded.Size())
	for i := 0; i < 4; i++ {
		assert.Equal(t, r.StateAt(i).Checksum(), loaded.StateAt(i).Checksum())
	}
}

func TestLoadMissingReplay(t *testing.T) {
	_, err := LoadReplayFromFile(t.TempDir(), "nope")
	assert.Error(t, err)
}

func TestRecorderLifecycle(t *testing.T) {
	rec := NewRecorder(nil, t.TempDir())

	rec.RecordState("game-1", &StateSnapshot{Turn: 1})
	_, ok := rec.Replay("game-1")
	assert.False(t, ok)

	rec.StartRecording("game-1")
	rec.RecordState("game-1", &StateSnapshot{GameID: "game-1", Turn: 1})
	rec.StopRecording("game-1")
	rec.RecordState("game-1", &StateSnapshot{GameID: "game-1", Turn: 2})

	replay, ok := rec.Replay("game-1")
	require.True(t, ok)
	assert.Equal(t, 1, replay.Size())

	require.NoError(t, rec.Save("game-1"))
	_, ok = rec.Replay("game-1")
	assert.False(t, ok)

	loaded, err := rec.Load("game-1")
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Size())
}
