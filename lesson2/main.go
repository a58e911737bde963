//go:build darwin || linux || windows
// +build darwin linux windows

// Lesson two hosts the same spinning triangle, but only on devices whose
// GL context supports OpenGL ES 2.0. Older contexts get a blank screen and
// a logged error instead of undefined shader behavior.
//
//   $ gomobile build github.com/kehaowei/opengl-lessons/lesson2 # will build an APK
//   $ gomobile install github.com/kehaowei/opengl-lessons/lesson2
package main

import (
	"log/slog"
	"os"

	"github.com/kehaowei/opengl-lessons/host"
	"github.com/kehaowei/opengl-lessons/lesson"
)

func main() {
	lesson.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg, err := lesson.LoadConfigAsset(lesson.ConfigAsset)
	if err != nil {
		lesson.Logger().Error("error loading lesson config, using defaults", "asset", lesson.ConfigAsset, "err", err)
	}
	host.Main(func() lesson.Renderer {
		return lesson.NewTriangle(cfg)
	}, host.Options{RequireES2: true, ShowFPS: cfg.ShowFPS})
}
