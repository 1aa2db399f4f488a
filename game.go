package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/forgeplay/scenerun/common"
	"github.com/forgeplay/scenerun/ecs"
	"github.com/forgeplay/scenerun/ecs/entity"
	"github.com/forgeplay/scenerun/ecs/system"
	"github.com/forgeplay/scenerun/pad"
	"github.com/forgeplay/scenerun/scene"
)

// StartOptions is the editor→runtime handoff: the initial camera frame
// so play mode opens where edit mode left off, and the stop callback the
// runtime invokes to hand control back.
type StartOptions struct {
	CameraX float64
	CameraY float64
	Zoom    float64
	OnStop  func()
}

type Game struct {
	desc *scene.SceneDescription
	opts StartOptions

	world     *ecs.World
	pw        *ecs.PhysicsWorld
	scheduler *ecs.Scheduler
	camSys    *system.CameraSystem
	index     *entity.Index

	padState *pad.State
	padUI    *ebitenui.UI
	stopUI   *ebitenui.UI

	watcher   *scene.Watcher
	scenePath string

	paused  bool
	stopped bool
	frames  int
}

func NewGame(desc *scene.SceneDescription, opts StartOptions) *Game {
	g := &Game{
		desc:     desc,
		opts:     opts,
		padState: &pad.State{},
	}
	g.buildWorld(desc)
	g.stopUI = NewStopUI(g)
	return g
}

// buildWorld compiles the scene into a fresh world. Used at startup and
// by the -watch rebuild path.
func (g *Game) buildWorld(desc *scene.SceneDescription) {
	if g.pw != nil {
		g.pw.Teardown()
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	ix := entity.BuildScene(w, pw, desc)

	g.desc = desc
	g.world = w
	g.pw = pw
	g.index = ix
	g.camSys = system.NewCameraSystem(g.opts.CameraX, g.opts.CameraY, g.opts.Zoom)
	g.scheduler = ecs.NewScheduler(
		system.NewLabelSystem(),
		system.NewForceFieldSystem(),
		system.NewPhysicsSystem(),
		system.NewScreenFixedSystem(),
		system.NewInputSystem(g.padState),
		system.NewControllerSystem(),
		system.NewScriptSystem(),
		g.camSys,
	)

	g.padState.Reset()
	if ix.NeedsPad && g.padUI == nil {
		g.padUI = pad.New(g.padState)
	}
	if !ix.NeedsPad {
		g.padUI = nil
	}
}

// Watch rebuilds the world whenever the scene file changes on disk.
func (g *Game) Watch(path string) error {
	w, err := scene.NewWatcher(path)
	if err != nil {
		return err
	}
	g.watcher = w
	g.scenePath = path
	return nil
}

// Stop tears the runtime down and hands control back to the host.
// Teardown is atomic from the caller's perspective: by the time OnStop
// runs, every body, shape, and input surface is gone.
func (g *Game) Stop() {
	if g == nil || g.stopped {
		return
	}
	g.stopped = true
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.pw != nil {
		g.pw.Teardown()
	}
	g.padUI = nil
	g.padState.Reset()
	if g.opts.OnStop != nil {
		g.opts.OnStop()
	}
}

func (g *Game) Update() error {
	if g.stopped {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.stopUI.Update()
		if g.stopped {
			return ebiten.Termination
		}
		return nil
	}

	g.drainWatcher()

	g.frames++
	g.scheduler.Update(g.world)

	if g.padUI != nil {
		g.padUI.Update()
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("watch: %v", err)
		default:
			if reload {
				desc, err := scene.LoadFile(g.scenePath)
				if err != nil {
					log.Printf("watch: reload skipped: %v", err)
					return
				}
				log.Printf("watch: rebuilding scene %q", desc.Name)
				g.buildWorld(desc)
			}
			return
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
