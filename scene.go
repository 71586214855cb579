package vitrine

// Context carries everything a scene needs to build its initial state.
type Context struct {
	// Width and Height are the drawable area in pixels.
	Width, Height int
	// Settings is the host's current settings snapshot.
	Settings Settings
	// Seed seeds any randomness the scene uses, so runs are reproducible.
	Seed int64
}

// Scene is the lifecycle contract implemented by every demo.
//
// The host calls Init once before the first frame, Animate once per frame,
// UpdateSettings whenever the shared settings change, and Cleanup when the
// scene is switched away from. All calls happen on the game loop goroutine;
// scenes need no locking.
type Scene interface {
	// Init builds the scene's initial state. Returning an error aborts the
	// scene switch and surfaces the error from the host.
	Init(ctx Context) error

	// Animate advances the simulation by dt seconds (already scaled by
	// Settings.Speed) and renders the frame to cv. in holds this frame's
	// input snapshot.
	Animate(dt float64, in *Input, cv Canvas)

	// UpdateSettings merges new host settings into the scene. Scenes that
	// only read Settings at Animate time may keep the value and ignore the
	// rest.
	UpdateSettings(s Settings)

	// Cleanup releases the scene's state. The host stops calling the scene
	// after Cleanup returns; a scene may be re-initialized later with Init.
	Cleanup()
}

// ControlProvider is implemented by scenes that expose interactive controls.
// The host lays the controls out along the bottom of the window, routes input
// to them before the scene sees it, and draws them after the scene's frame.
// Controls() is called once after Init; the returned slice is retained until
// Cleanup.
type ControlProvider interface {
	Controls() []Control
}
