package vitrine

import (
	"fmt"
	"sort"
)

// Factory constructs a fresh, uninitialized scene instance.
type Factory func() Scene

var registry = map[string]Factory{}

// Register makes a scene available under the given name. Scene packages call
// Register from an init function; importing the package for side effects is
// enough to make the scene selectable. Register panics if the name is empty
// or already taken.
func Register(name string, f Factory) {
	if name == "" {
		panic("vitrine: Register with empty scene name")
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("vitrine: Register called twice for scene %q", name))
	}
	registry[name] = f
}

// NewScene constructs the scene registered under name.
func NewScene(name string) (Scene, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("vitrine: unknown scene %q", name)
	}
	return f(), nil
}

// SceneNames returns the registered scene names in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
