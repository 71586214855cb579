// Package vitrine is a gallery host for interactive, canvas-rendered
// simulation scenes built on [Ebitengine].
//
// A scene is a self-contained animated demo — a wave-interference field, a
// billiard table, a Hopfield network relaxing toward a stored pattern — that
// owns its state and implements the [Scene] lifecycle: Init, Animate,
// UpdateSettings, Cleanup. The [Host] drives the active scene once per frame,
// snapshots mouse and keyboard input, propagates the shared [Settings]
// (speed, intensity, video mode), and renders any controls the scene exposes.
//
// # Quick start
//
// Scenes register themselves by name; import their packages for side effects
// and run a host:
//
//	import (
//		"github.com/phanxgames/vitrine"
//		_ "github.com/phanxgames/vitrine/scenes/wave"
//	)
//
//	host := vitrine.NewHost(vitrine.HostConfig{
//		Title: "vitrine", Width: 1280, Height: 720, StartScene: "wave",
//	})
//	if err := host.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Writing a scene
//
// Implement [Scene] and call [Register] from an init function. Animate
// receives the elapsed seconds (already scaled by Settings.Speed), the
// per-frame [Input] snapshot, and a [Canvas] to draw on. Scenes that
// implement [ControlProvider] get sliders, buttons, and draggable markers
// rendered and routed by the host.
//
// Drawing goes through the [Canvas] interface rather than an *ebiten.Image
// directly, so scenes stay headless-testable: tests drive a scene with
// [NullCanvas] and synthetic input via [Host.InjectClick] and friends, or
// replay a JSON [Script].
//
// [Ebitengine]: https://ebitengine.org
package vitrine
