package engine

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      *intmap.Map[uint64, *GameObject]
	services    map[reflect.Type]any
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      intmap.New[uint64, *GameObject](64),
		services:    make(map[reflect.Type]any),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = intmap.New[uint64, *GameObject](64)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap.Put(g.UID, g)
}

// RemoveGameObject removes g and all of its children from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if s.uidMap != nil {
		s.uidMap.Del(g.UID)
	}
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s.uidMap == nil {
		return nil
	}
	g, _ := s.uidMap.Get(uid)
	return g
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// SetService attaches a scene-wide service keyed by its static type T.
// Register interfaces with an explicit type argument, e.g. SetService[Input].
func SetService[T any](s *Scene, svc T) {
	if s.services == nil {
		s.services = make(map[reflect.Type]any)
	}
	s.services[reflect.TypeFor[T]()] = svc
}

// GetService returns the service registered for T, or the zero value.
func GetService[T any](s *Scene) T {
	var zero T
	if s == nil {
		return zero
	}
	if svc, ok := s.services[reflect.TypeFor[T]()].(T); ok {
		return svc
	}
	return zero
}
