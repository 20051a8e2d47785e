package game

import (
	"fmt"
	"log"

	"raypick/internal/cameraext"
	"raypick/internal/config"
	"raypick/internal/engine"
	"raypick/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const statusBarHeight = 24

type Game struct {
	Config   config.DemoConfig
	World    *world.World
	text     *frameText
	viewport *cameraext.Viewport
	lastHit  string
	clicks   int
}

func New(cfg config.DemoConfig) *Game {
	g := &Game{
		Config:   cfg,
		World:    world.New(cfg.Seed),
		text:     newFrameText(),
		viewport: &cameraext.Viewport{Width: cfg.Width, Height: cfg.Height},
	}
	scene := g.World.Scene
	engine.SetService[engine.Input](scene, raylibInput{})
	engine.SetService[engine.DebugText](scene, g.text)
	engine.SetService(scene, g.viewport)
	return g
}

func (g *Game) Run() {
	if g.Config.HighDPI {
		rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(g.Config.Width, g.Config.Height, g.Config.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.TargetFPS)

	g.World.Initialize(g.Config)
	g.World.Demo.OnClick.AddListener(func(hit *engine.GameObject) {
		g.lastHit = hit.Name
		g.clicks++
	})
	log.Printf("Game: %dx%d @ %d fps", g.Config.Width, g.Config.Height, g.Config.TargetFPS)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	g.viewport.Width = int32(rl.GetScreenWidth())
	g.viewport.Height = int32(rl.GetScreenHeight())
	g.World.Update(rl.GetFrameTime())
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.RayWhite)
	g.World.Draw()
	g.text.Flush()

	if g.Config.ShowStatus {
		g.drawStatusBar()
	}
	rl.DrawFPS(g.viewport.Width-90, 10)
}

func (g *Game) drawStatusBar() {
	status := "Left click an object to turn the camera toward it"
	if g.clicks > 0 {
		status = fmt.Sprintf("Last hit: %s (%d clicks)", g.lastHit, g.clicks)
	}
	bounds := rl.Rectangle{
		X:      0,
		Y:      float32(g.viewport.Height - statusBarHeight),
		Width:  float32(g.viewport.Width),
		Height: statusBarHeight,
	}
	gui.StatusBar(bounds, status)
}
