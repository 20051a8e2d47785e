package world

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"raypick/internal/components"
	"raypick/internal/config"
	"raypick/internal/engine"
	"raypick/internal/physics"
	"raypick/internal/scripts"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	FloorSize = 60.0

	CameraName = "MainCamera"
	DemoName   = "Beacon"
)

type World struct {
	Scene      *engine.Scene
	Simulation *physics.Simulation
	Camera     *components.Camera
	Demo       *scripts.CameraExtensionsDemo
	rng        *rand.Rand
}

func New(seed int64) *World {
	w := &World{
		Scene:      engine.NewScene("Main"),
		Simulation: physics.NewSimulation(),
		rng:        rand.New(rand.NewSource(seed)),
	}
	engine.SetService(w.Scene, w.Simulation)
	return w
}

// Initialize builds the demo scene and starts every object. It does not need
// a window.
func (w *World) Initialize(cfg config.DemoConfig) {
	w.createFloor()
	w.createCamera(cfg)
	w.createBeacon()
	w.createTargets(cfg.Targets)

	w.Scene.Start()
	log.Printf("World: %d objects, %d colliders", len(w.Scene.GameObjects), len(w.Simulation.Colliders()))
}

// Spawn adds g to the scene and registers its colliders.
func (w *World) Spawn(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Simulation.Register(g)
}

// Destroy removes g from the scene and the simulation.
func (w *World) Destroy(g *engine.GameObject) {
	w.Simulation.Unregister(g)
	w.Scene.RemoveGameObject(g)
}

func (w *World) createFloor() {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.05}
	floor.AddComponent(components.NewMeshRenderer(components.MeshPlane, rl.LightGray, rl.Vector3{X: FloorSize, Z: FloorSize}))
	collider := components.NewBoxCollider(rl.Vector3{X: FloorSize, Y: 0.1, Z: FloorSize})
	collider.Group = physics.StaticFilter
	floor.AddComponent(collider)
	w.Spawn(floor)
}

func (w *World) createCamera(cfg config.DemoConfig) {
	camObj := engine.NewGameObject(CameraName)
	camObj.Transform.Position = rl.Vector3{X: 0, Y: 12, Z: 24}
	camObj.Transform.SetEuler(-25, 0, 0)

	w.Camera = components.NewCamera()
	w.Camera.FOV = cfg.CameraFOV
	w.Camera.Far = cfg.CameraFar
	w.Camera.IsMain = true
	camObj.AddComponent(w.Camera)
	w.Spawn(camObj)
}

// createBeacon places the object carrying the demo script at the origin.
func (w *World) createBeacon() {
	beacon := engine.NewGameObject(DemoName)
	beacon.Transform.Position = rl.Vector3{Y: 1}
	beacon.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Gold, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}))

	w.Demo = engine.CreateScript("CameraExtensionsDemo", map[string]any{"camera": CameraName}).(*scripts.CameraExtensionsDemo)
	w.Demo.OnClick.AddListener(func(g *engine.GameObject) {
		log.Printf("Demo: camera turned toward %s at (%.1f, %.1f, %.1f)", g.Name, g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z)
	})
	beacon.AddComponent(w.Demo)
	w.Spawn(beacon)
}

func (w *World) createTargets(count int) {
	colors := []rl.Color{
		rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
		rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
	}

	for i := range count {
		angle := float64(i) * (2 * math.Pi / float64(count))
		radius := 8 + w.rng.Float64()*8
		pos := rl.Vector3{
			X: float32(math.Cos(angle) * radius),
			Y: float32(1 + w.rng.Float64()*4),
			Z: float32(math.Sin(angle) * radius),
		}
		color := colors[i%len(colors)]

		target := engine.NewGameObject(fmt.Sprintf("Target_%d", i))
		target.Transform.Position = pos
		target.Tags = []string{"target"}

		if i%2 == 0 {
			size := rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}
			target.AddComponent(components.NewMeshRenderer(components.MeshCube, color, size))
			target.AddComponent(components.NewBoxCollider(size))
		} else {
			r := float32(0.9)
			renderer := components.NewMeshRenderer(components.MeshSphere, color, rl.Vector3{X: r, Y: r, Z: r})
			renderer.Wireframe = true
			target.AddComponent(renderer)
			target.AddComponent(components.NewSphereCollider(r))
		}

		spin := engine.CreateScript("Rotator", map[string]any{"speed": float64(30 + w.rng.Intn(90))})
		target.AddComponent(spin)

		w.Spawn(target)
	}
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Draw renders every MeshRenderer through the main camera.
func (w *World) Draw() {
	rl.BeginMode3D(w.Camera.GetRaylibCamera())
	for _, g := range w.Scene.GameObjects {
		for _, m := range engine.FindComponents[*components.MeshRenderer](g) {
			m.Draw()
		}
	}
	rl.EndMode3D()
}
