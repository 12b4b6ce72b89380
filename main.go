package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rmendoza/mazebound/common"
)

func main() {
	levelName := flag.String("level", "", "level name from levels.yaml to start on")
	debug := flag.Bool("debug", false, "enable the minimap overlay")
	dev := flag.Bool("dev", false, "hot reload prefabs and levels from disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	width, height := parseResolution(flag.Args())

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("mazebound")

	game, err := NewGame(*levelName, *debug, *dev)
	if err != nil {
		log.Fatalf("mazebound: %v", err)
	}
	defer game.Shutdown()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// parseResolution reads an optional "<width> <height>" positional override.
// Values must parse and be at least 200; anything else warns and keeps the
// default window size.
func parseResolution(args []string) (int, int) {
	width, height := common.BaseWidth, common.BaseHeight
	if len(args) < 2 {
		return width, height
	}

	w, errW := strconv.Atoi(args[0])
	h, errH := strconv.Atoi(args[1])
	if errW != nil || errH != nil || w < 200 || h < 200 {
		log.Printf("ignoring resolution %q %q: need two integers >= 200", args[0], args[1])
		return width, height
	}
	return w, h
}
