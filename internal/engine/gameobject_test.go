package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func nearlyEqual(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}
	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}
	if !obj.Active {
		t.Error("new GameObject should be active")
	}
	if obj.Transform.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Expected identity rotation, got %v", obj.Transform.Rotation)
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	seen := map[uint64]bool{}
	for range 10 {
		obj := NewGameObject("Obj")
		if seen[obj.UID] {
			t.Fatalf("duplicate UID %d", obj.UID)
		}
		seen[obj.UID] = true
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"target", "pickable"}

	if !obj.HasTag("target") {
		t.Error("HasTag should return true for existing tag")
	}
	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}
	if NewGameObject("Empty").HasTag("anything") {
		t.Error("HasTag should return false when Tags is empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)
	if child1.Parent != parent || len(parent.Children) != 2 {
		t.Fatal("AddChild did not link parent and child")
	}

	parent.RemoveChild(child1)
	if len(parent.Children) != 1 || parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}
	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if comp.GetGameObject() != obj {
		t.Error("Component.gameObject should be set")
	}
	if found := GetComponent[*BaseComponent](obj); found != comp {
		t.Error("GetComponent failed to find component")
	}
	if found := GetComponent[*BaseComponent](nil); found != nil {
		t.Error("GetComponent on nil GameObject should return nil")
	}
}

type named interface{ Name() string }

type namedComponent struct {
	BaseComponent
	name string
}

func (n *namedComponent) Name() string { return n.name }

func TestFindComponentsByInterface(t *testing.T) {
	obj := NewGameObject("Test")
	obj.AddComponent(&namedComponent{name: "a"})
	obj.AddComponent(&BaseComponent{})
	obj.AddComponent(&namedComponent{name: "b"})

	found := FindComponents[named](obj)
	if len(found) != 2 {
		t.Fatalf("Expected 2 named components, got %d", len(found))
	}
	if found[0].Name() != "a" || found[1].Name() != "b" {
		t.Errorf("components out of order: %s, %s", found[0].Name(), found[1].Name())
	}
}

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")

	obj.Start()
	if !obj.started {
		t.Error("started flag should be true after Start()")
	}
	obj.Start()
}

func TestTransformForward(t *testing.T) {
	obj := NewGameObject("Test")
	if got := obj.Transform.Forward(); !nearlyEqual(got, rl.Vector3{Z: -1}) {
		t.Errorf("unrotated forward should be -Z, got %v", got)
	}

	obj.Transform.SetEuler(0, 90, 0)
	if got := obj.Transform.Forward(); !nearlyEqual(got, rl.Vector3{X: -1}) {
		t.Errorf("yaw 90 forward should be -X, got %v", got)
	}
}

func TestWorldPositionFollowsParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10}
	parent.Transform.SetEuler(0, 90, 0)
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{Z: -2}
	parent.AddChild(child)

	want := rl.Vector3{X: 8}
	if got := child.WorldPosition(); !nearlyEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
