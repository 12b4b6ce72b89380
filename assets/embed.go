package assets

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed sounds/*.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// Context returns the shared audio context, creating it on first use so
// importing this package never touches the audio device.
func Context() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// LoadSoundPlayer creates a player for an embedded sound effect
// (assets-relative, e.g. "coin.wav" or "sounds/coin.wav").
func LoadSoundPlayer(name string) (*audio.Player, error) {
	clean := cleanSoundPath(name)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return Context().NewPlayer(stream)
}

// LoadMusicPlayer opens a streamed music track from disk. Tracks are looked
// up beside the executable and in the working directory: sounds/<track>.ogg,
// sounds/<track>.wav, then the fixed music.ogg fallback. A missing or
// undecodable track is an error; callers degrade to silence.
func LoadMusicPlayer(track string) (*audio.Player, error) {
	var lastErr error
	for _, path := range MusicCandidates(track) {
		b, err := os.ReadFile(path)
		if err != nil {
			if lastErr == nil || !os.IsNotExist(err) {
				lastErr = err
			}
			continue
		}
		player, err := decodeMusic(path, b)
		if err != nil {
			lastErr = err
			continue
		}
		return player, nil
	}
	if lastErr == nil {
		lastErr = os.ErrNotExist
	}
	return nil, fmt.Errorf("assets: music track %q: %w", track, lastErr)
}

func decodeMusic(path string, b []byte) (*audio.Player, error) {
	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
		return Context().NewPlayer(stream)
	}
	stream, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode ogg %s: %w", path, err)
	}
	return Context().NewPlayer(stream)
}

// MusicCandidates lists the disk paths tried for a track, in order.
func MusicCandidates(track string) []string {
	rels := []string{
		filepath.Join("sounds", track+".ogg"),
		filepath.Join("sounds", track+".wav"),
		"music.ogg",
	}

	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}

	seen := make(map[string]bool)
	var out []string
	for _, dir := range dirs {
		for _, rel := range rels {
			path := filepath.Join(dir, rel)
			if seen[path] {
				continue
			}
			seen[path] = true
			out = append(out, path)
		}
	}
	return out
}

func cleanSoundPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "assets/")
	if !strings.HasPrefix(s, "sounds/") {
		s = "sounds/" + s
	}
	return s
}
