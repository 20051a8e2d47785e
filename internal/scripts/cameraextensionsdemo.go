package scripts

import (
	"fmt"
	"log"

	"raypick/internal/cameraext"
	"raypick/internal/components"
	"raypick/internal/engine"
	"raypick/internal/mathx"
	"raypick/internal/physicsext"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraExtensionsDemo prints where its object lands on screen and, when the
// mouse button is pressed, turns the main camera toward whatever the cursor
// ray hits.
//
// It reads engine.Input, engine.DebugText and *cameraext.Viewport from the
// scene's services and the simulation through physicsext.GetSimulation.
type CameraExtensionsDemo struct {
	engine.BaseComponent
	CameraName string // empty selects the scene's main camera
	MainCamera *components.Camera
	Button     rl.MouseButton

	// OnClick fires with the hit object after the camera has turned.
	OnClick engine.EventWithArg[*engine.GameObject]

	message string
}

func NewCameraExtensionsDemo() *CameraExtensionsDemo {
	return &CameraExtensionsDemo{Button: rl.MouseButtonLeft}
}

func (d *CameraExtensionsDemo) Start() {
	if d.MainCamera != nil {
		return
	}
	scene := d.Scene()
	if d.CameraName != "" && scene != nil {
		d.MainCamera = engine.GetComponent[*components.Camera](scene.FindByName(d.CameraName))
	} else {
		d.MainCamera = components.FindMainCamera(scene)
	}
	if d.MainCamera == nil {
		log.Printf("CameraExtensionsDemo: no camera found (name %q)", d.CameraName)
	}
}

// Message is the name of the last clicked object, empty after a miss.
func (d *CameraExtensionsDemo) Message() string {
	return d.message
}

func (d *CameraExtensionsDemo) Update(deltaTime float32) {
	g := d.GetGameObject()
	scene := d.Scene()
	input := engine.GetService[engine.Input](scene)
	debug := engine.GetService[engine.DebugText](scene)
	vp := engine.GetService[*cameraext.Viewport](scene)
	if d.MainCamera == nil || input == nil || debug == nil || vp == nil {
		return
	}

	if p, err := cameraext.WorldToScreenPoint(d.MainCamera, g.Transform.Position, *vp); err == nil {
		debug.Print(fmt.Sprintf("Screen %s", p), 20, 20)
	}

	ray, err := cameraext.ScreenToWorldRaySegment(d.MainCamera, input.MousePosition(), *vp)
	if err != nil {
		return
	}
	debug.Print(fmt.Sprintf("ScreenToWorldRaySegment %s", ray), 20, 40)

	if !input.IsMouseButtonPressed(d.Button) {
		return
	}
	d.message = ""

	sim, err := physicsext.GetSimulation(d)
	if err != nil {
		log.Printf("CameraExtensionsDemo: %v", err)
		return
	}
	hit, err := physicsext.Raycast(sim, ray)
	if err != nil {
		log.Printf("CameraExtensionsDemo: raycast: %v", err)
		return
	}
	if hit.Succeeded {
		target := hit.Entity()
		d.message = target.Name

		camObj := d.MainCamera.GetGameObject()
		camObj.Transform.Rotation = mathx.LookRotation(camObj.Transform.Position, target.Transform.Position, mathx.UnitY)
		d.OnClick.Invoke(target)
	}
	debug.Print(fmt.Sprintf("Clicked on %s", d.message), 20, 60)
}

func init() {
	engine.RegisterScript("CameraExtensionsDemo", cameraExtensionsDemoFactory, cameraExtensionsDemoSerializer)
}

func cameraExtensionsDemoFactory(props map[string]any) engine.Component {
	d := NewCameraExtensionsDemo()
	if v, ok := props["camera"].(string); ok {
		d.CameraName = v
	}
	if v, ok := props["button"].(float64); ok {
		d.Button = rl.MouseButton(v)
	}
	return d
}

func cameraExtensionsDemoSerializer(c engine.Component) map[string]any {
	d, ok := c.(*CameraExtensionsDemo)
	if !ok {
		return nil
	}
	return map[string]any{
		"camera": d.CameraName,
		"button": float64(d.Button),
	}
}
