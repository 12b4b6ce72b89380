package prefabs

import "testing"

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		t.Fatalf("load player spec: %v", err)
	}
	if spec.MoveSpeed <= 0 {
		t.Fatalf("player move speed should be positive, got %v", spec.MoveSpeed)
	}
	if spec.FOVDegrees <= 0 || spec.FOVDegrees >= 180 {
		t.Fatalf("player fov out of range: %v", spec.FOVDegrees)
	}
	if len(spec.Audio) == 0 {
		t.Fatal("player prefab should carry audio clips")
	}
}

func TestLoadChaserSpec(t *testing.T) {
	spec, err := LoadSpec[ChaserSpec]("chaser.yaml")
	if err != nil {
		t.Fatalf("load chaser spec: %v", err)
	}
	if spec.Speed <= 0 {
		t.Fatalf("chaser speed should be positive, got %v", spec.Speed)
	}
	if spec.Script == "" {
		t.Fatal("chaser prefab should name its script")
	}
	if spec.Billboard.Kind != "chaser" {
		t.Fatalf("unexpected billboard kind %q", spec.Billboard.Kind)
	}
}

func TestLoadCoinSpec(t *testing.T) {
	spec, err := LoadSpec[CoinSpec]("coin.yaml")
	if err != nil {
		t.Fatalf("load coin spec: %v", err)
	}
	if spec.Radius <= 0 {
		t.Fatalf("coin radius should be positive, got %v", spec.Radius)
	}
}

func TestLoadMusicPlayerSpec(t *testing.T) {
	spec, err := LoadSpec[MusicPlayerSpec]("music_player.yaml")
	if err != nil {
		t.Fatalf("load music player spec: %v", err)
	}
	if _, ok := spec.TrackVolumes["menu"]; !ok {
		t.Fatal("music player prefab should configure the menu track volume")
	}
	if _, ok := spec.TrackVolumes["game"]; !ok {
		t.Fatal("music player prefab should configure the game track volume")
	}
}

func TestLoadScriptFindsChaserScript(t *testing.T) {
	for _, name := range []string{"chaser.tengo", "scripts/chaser.tengo", "prefabs/scripts/chaser.tengo"} {
		b, err := LoadScript(name)
		if err != nil {
			t.Fatalf("load script %q: %v", name, err)
		}
		if len(b) == 0 {
			t.Fatalf("script %q is empty", name)
		}
	}
}

func TestLoadSpecUnknownFile(t *testing.T) {
	if _, err := LoadSpec[PlayerSpec]("nope.yaml"); err == nil {
		t.Fatal("expected an error for a missing prefab")
	}
}
