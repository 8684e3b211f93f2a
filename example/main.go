// Example draws a single textured quad through a fixed camera and
// perspective transform until the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # shaders and texture are read relative to the working directory
//
// Flags:
//
//	-config scene.yml   overlay settings from a YAML file
//	-v                  debug logging
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/quad"
	"github.com/go-theft-auto/quad/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML scene configuration")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := quad.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = quad.LoadConfig(configPath); err != nil {
			return err
		}
	}

	window, err := opengl.OpenWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Close()

	camera := quad.NewCamera(cfg.Window.Width, cfg.Window.Height)

	renderer, err := opengl.Load(cfg)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	loop := quad.NewLoop(window, renderer, quad.NewScene(cfg, camera))
	frames := loop.Run()
	slog.Info("window closed", "frames", frames)

	return nil
}
