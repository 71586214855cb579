// Command vitrine opens the scene gallery. Scenes register themselves
// through their package init functions; pass -list to see what is
// available, -scene to start somewhere specific, or -script to drive a
// session from a recorded input script.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/vitrine"

	_ "github.com/phanxgames/vitrine/scenes/automata"
	_ "github.com/phanxgames/vitrine/scenes/billiards"
	_ "github.com/phanxgames/vitrine/scenes/fluid"
	_ "github.com/phanxgames/vitrine/scenes/hopfield"
	_ "github.com/phanxgames/vitrine/scenes/options"
	_ "github.com/phanxgames/vitrine/scenes/primes"
	_ "github.com/phanxgames/vitrine/scenes/quantum"
	_ "github.com/phanxgames/vitrine/scenes/spin2"
	_ "github.com/phanxgames/vitrine/scenes/wave"
)

// fileConfig is the optional YAML config; flags override its fields.
type fileConfig struct {
	Scene      string           `yaml:"scene"`
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	CaptureDir string           `yaml:"capture_dir"`
	Seed       int64            `yaml:"seed"`
	Settings   vitrine.Settings `yaml:"settings"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		scene      = flag.String("scene", "", "scene to start with")
		width      = flag.Int("width", 0, "window width")
		height     = flag.Int("height", 0, "window height")
		speed      = flag.Float64("speed", 0, "simulation speed multiplier")
		intensity  = flag.Float64("intensity", 0, "scene intensity in [0, 1]")
		videoMode  = flag.String("video", "", "video mode: standard, cinematic, or capture")
		captureDir = flag.String("capture-dir", "", "directory for screenshots and capture frames")
		seed       = flag.Int64("seed", 0, "scene randomness seed")
		scriptPath = flag.String("script", "", "input script to play back")
		list       = flag.Bool("list", false, "list registered scenes and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(vitrine.SceneNames(), "\n"))
		return
	}

	var fc fileConfig
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatalf("read config: %v", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			log.Fatalf("parse config %s: %v", *configPath, err)
		}
	}

	cfg := vitrine.HostConfig{
		Title:      "vitrine",
		Width:      pick(*width, fc.Width),
		Height:     pick(*height, fc.Height),
		StartScene: pickStr(*scene, fc.Scene),
		CaptureDir: pickStr(*captureDir, fc.CaptureDir),
		Seed:       pick64(*seed, fc.Seed),
	}
	cfg.Settings = fc.Settings
	cfg.Settings = cfg.Settings.Merge(vitrine.Settings{
		Speed:     *speed,
		Intensity: *intensity,
		VideoMode: *videoMode,
	})

	host := vitrine.NewHost(cfg)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		script, err := vitrine.LoadScript(data)
		if err != nil {
			log.Fatalf("parse script %s: %v", *scriptPath, err)
		}
		host.SetScript(script)
	}

	if err := host.Run(); err != nil {
		log.Fatal(err)
	}
}

func pick(flagVal, fileVal int) int {
	if flagVal != 0 {
		return flagVal
	}
	return fileVal
}

func pick64(flagVal, fileVal int64) int64 {
	if flagVal != 0 {
		return flagVal
	}
	return fileVal
}

func pickStr(flagVal, fileVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return fileVal
}
