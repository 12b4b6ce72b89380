package assets

import (
	"path/filepath"
	"testing"
)

func TestMusicCandidatesOrder(t *testing.T) {
	paths := MusicCandidates("menu")
	if len(paths) < 3 {
		t.Fatalf("expected at least 3 candidates, got %v", paths)
	}
	if paths[0] != filepath.Join("sounds", "menu.ogg") {
		t.Fatalf("first candidate should be the named ogg, got %s", paths[0])
	}
	if paths[1] != filepath.Join("sounds", "menu.wav") {
		t.Fatalf("second candidate should be the named wav, got %s", paths[1])
	}
	if paths[2] != "music.ogg" {
		t.Fatalf("third candidate should be the fixed fallback, got %s", paths[2])
	}
}

func TestMusicCandidatesDeduplicates(t *testing.T) {
	paths := MusicCandidates("game")
	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			t.Fatalf("duplicate candidate %s in %v", p, paths)
		}
		seen[p] = true
	}
}

func TestEmbeddedSoundsPresent(t *testing.T) {
	for _, name := range []string{"coin.wav", "caught.wav", "select.wav"} {
		b, err := assetsFS.ReadFile("sounds/" + name)
		if err != nil {
			t.Fatalf("embedded sound %s: %v", name, err)
		}
		if len(b) < 44 {
			t.Fatalf("%s too small to be a wav (%d bytes)", name, len(b))
		}
	}
}

func TestCleanSoundPath(t *testing.T) {
	cases := map[string]string{
		"coin.wav":               "sounds/coin.wav",
		"sounds/coin.wav":        "sounds/coin.wav",
		"assets/sounds/coin.wav": "sounds/coin.wav",
	}
	for in, want := range cases {
		if got := cleanSoundPath(in); got != want {
			t.Fatalf("cleanSoundPath(%q) = %q, want %q", in, got, want)
		}
	}
}
