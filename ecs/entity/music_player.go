package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/rmendoza/mazebound/ecs"
	"github.com/rmendoza/mazebound/ecs/component"
	"github.com/rmendoza/mazebound/prefabs"
)

// NewMusicPlayer builds the music player singleton from its prefab.
func NewMusicPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadSpec[prefabs.MusicPlayerSpec]("music_player.yaml")
	if err != nil {
		return 0, fmt.Errorf("music player: %w", err)
	}

	trackVolumes := make(map[string]float64, len(spec.TrackVolumes))
	for track, volume := range spec.TrackVolumes {
		trackVolumes[track] = volume
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), &component.MusicPlayer{
		Players:      make(map[string]*audio.Player),
		TrackVolumes: trackVolumes,
		Failed:       make(map[string]bool),
	}); err != nil {
		return 0, fmt.Errorf("music player: add component: %w", err)
	}
	return ent, nil
}

// CloneMusicPlayerState deep-copies playback state so it can be carried
// across a level rebuild without reopening the streamed tracks.
func CloneMusicPlayerState(src *component.MusicPlayer) *component.MusicPlayer {
	if src == nil {
		return nil
	}

	players := make(map[string]*audio.Player, len(src.Players))
	for track, player := range src.Players {
		players[track] = player
	}
	trackVolumes := make(map[string]float64, len(src.TrackVolumes))
	for track, volume := range src.TrackVolumes {
		trackVolumes[track] = volume
	}
	failed := make(map[string]bool, len(src.Failed))
	for track, v := range src.Failed {
		failed[track] = v
	}

	return &component.MusicPlayer{
		Players:       players,
		TrackVolumes:  trackVolumes,
		CurrentTrack:  src.CurrentTrack,
		CurrentVolume: src.CurrentVolume,
		CurrentLoop:   src.CurrentLoop,
		PendingTrack:  src.PendingTrack,
		PendingVolume: src.PendingVolume,
		PendingLoop:   src.PendingLoop,
		PendingActive: src.PendingActive,
		FadeStep:      src.FadeStep,
		Failed:        failed,
	}
}

// NewMusicPlayerFromState rebuilds the music player singleton in a fresh
// world, keeping whatever was playing.
func NewMusicPlayerFromState(w *ecs.World, state *component.MusicPlayer) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("music player: world is nil")
	}
	if state == nil {
		return NewMusicPlayer(w)
	}

	ent := ecs.CreateEntity(w)
	if err := ecs.Add(w, ent, component.MusicPlayerComponent.Kind(), CloneMusicPlayerState(state)); err != nil {
		return 0, fmt.Errorf("music player: add component: %w", err)
	}
	return ent, nil
}
