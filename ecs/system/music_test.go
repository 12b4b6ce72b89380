package system

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
)

func newMusicWorld(t *testing.T) (*ecs.World, *component.MusicPlayer) {
	t.Helper()
	w := ecs.NewWorld()
	ent := ecs.CreateEntity(w)
	player := &component.MusicPlayer{}
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), player); err != nil {
		t.Fatalf("add music player: %v", err)
	}
	return w, player
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestMissingTrackWarnsExactlyOnce(t *testing.T) {
	w, player := newMusicWorld(t)
	buf := captureLog(t)
	sys := NewMusicSystem()

	RequestMusic(w, "no_such_track")
	sys.Update(w)

	if !player.Failed["no_such_track"] {
		t.Fatal("failed track should be remembered")
	}
	if player.CurrentTrack != "" {
		t.Fatalf("nothing should be playing, got %q", player.CurrentTrack)
	}
	if got := strings.Count(buf.String(), "no_such_track"); got != 1 {
		t.Fatalf("expected exactly 1 warning, got %d:\n%s", got, buf.String())
	}

	// A second request for the same track is not retried and stays silent.
	RequestMusic(w, "no_such_track")
	sys.Update(w)

	if got := strings.Count(buf.String(), "no_such_track"); got != 1 {
		t.Fatalf("expected no second warning, got %d:\n%s", got, buf.String())
	}
}

func TestLatestRequestWins(t *testing.T) {
	w, player := newMusicWorld(t)
	captureLog(t)
	sys := NewMusicSystem()

	RequestMusic(w, "first_missing")
	RequestMusic(w, "second_missing")
	sys.Update(w)

	if player.Failed["first_missing"] {
		t.Fatal("superseded request should never be loaded")
	}
	if !player.Failed["second_missing"] {
		t.Fatal("latest request should have been attempted")
	}
	if _, ok := ecs.First(w, component.MusicRequestComponent.Kind()); ok {
		t.Fatal("all requests should be consumed")
	}
}

func TestStopWithNothingPlaying(t *testing.T) {
	w, player := newMusicWorld(t)
	sys := NewMusicSystem()

	StopMusic(w)
	sys.Update(w)

	if player.PendingActive {
		t.Fatal("stop with nothing playing should not start a fade")
	}
	if player.CurrentTrack != "" {
		t.Fatalf("current track should stay empty, got %q", player.CurrentTrack)
	}
}

func TestReleaseMusicClearsState(t *testing.T) {
	w, player := newMusicWorld(t)
	player.CurrentTrack = "stale"
	player.CurrentVolume = 0.5
	player.PendingActive = true

	ReleaseMusic(w)

	if player.CurrentTrack != "" || player.CurrentVolume != 0 || player.PendingActive {
		t.Fatalf("release should clear playback state: %+v", player)
	}
}
