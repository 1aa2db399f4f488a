package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/scene"
	"github.com/forgeplay/scenerun/scenes"
)

func main() {
	sceneName := flag.String("scene", "playground", "scene name in scenes/ (basename, .yaml optional) or a path to a scene file")
	watch := flag.Bool("watch", false, "rebuild the world when the scene file changes on disk")
	camX := flag.Float64("camx", float64(common.BaseWidth)/2, "initial camera center X")
	camY := flag.Float64("camy", float64(common.BaseHeight)/2, "initial camera center Y")
	zoom := flag.Float64("zoom", 1, "initial camera zoom")
	flag.Parse()

	desc, path, err := loadScene(*sceneName)
	if err != nil {
		log.Fatalf("main: load scene %q: %v", *sceneName, err)
	}

	game := NewGame(desc, StartOptions{
		CameraX: *camX,
		CameraY: *camY,
		Zoom:    *zoom,
		OnStop: func() {
			log.Printf("main: scene %q stopped", desc.Name)
		},
	})

	if *watch {
		if path == "" {
			log.Printf("main: -watch ignored: scene %q loaded from embedded data", *sceneName)
		} else if err := game.Watch(path); err != nil {
			log.Printf("main: watch disabled: %v", err)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("scenerun")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadScene resolves name as either a file path or the name of a bundled
// scene. The returned path is empty when the scene came from embedded data.
func loadScene(name string) (*scene.SceneDescription, string, error) {
	if strings.ContainsAny(name, "/\\") || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		desc, err := scene.LoadFile(name)
		return desc, name, err
	}
	data, path, err := scenes.Load(name)
	if err != nil {
		return nil, "", err
	}
	desc, err := scene.Decode(data)
	return desc, path, err
}
