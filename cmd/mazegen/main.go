package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.design/x/clipboard"

	"github.com/rmendoza/mazebound/levels"
)

func main() {
	cols := flag.Int("w", 21, "maze width in cells (odd, >= 5)")
	rows := flag.Int("h", 15, "maze height in cells (odd, >= 5)")
	coins := flag.Int("coins", 8, "number of coins to place")
	chasers := flag.Int("chasers", 2, "number of chasers to place")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	out := flag.String("o", "", "write the maze to this file instead of stdout")
	copyFlag := flag.Bool("copy", false, "also copy the maze to the system clipboard")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	maze, err := levels.Generate(levels.GenerateOptions{
		Cols:    *cols,
		Rows:    *rows,
		Coins:   *coins,
		Chasers: *chasers,
		Seed:    s,
	})
	if err != nil {
		log.Fatalf("mazegen: %v", err)
	}

	text := maze.String()

	if *out != "" {
		if err := os.WriteFile(*out, []byte(text), 0o644); err != nil {
			log.Fatalf("mazegen: write %s: %v", *out, err)
		}
	} else {
		fmt.Print(text)
	}

	if *copyFlag {
		if err := clipboard.Init(); err != nil {
			log.Fatalf("mazegen: clipboard: %v", err)
		}
		clipboard.Write(clipboard.FmtText, []byte(text))
	}
}
