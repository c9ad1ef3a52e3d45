package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	prefab := flag.String("prefab", "sentry.yaml", "sentry prefab in prefabs/ (basename)")
	debug := flag.Bool("debug", false, "draw view cones, waypoints and sense radii")
	watch := flag.Bool("watch", true, "hot-reload prefabs edited on disk")
	flag.Parse()

	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("sentry")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(*prefab, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
