//go:build darwin || linux || windows
// +build darwin linux windows

// Lesson one draws a triangle spinning once every ten seconds.
//
// Build it as an Android APK with the gomobile tool.
//
// See http://godoc.org/golang.org/x/mobile/cmd/gomobile to install gomobile.
//
//   $ gomobile build github.com/kehaowei/opengl-lessons/lesson1 # will build an APK
//   $ gomobile install github.com/kehaowei/opengl-lessons/lesson1
//
// It also runs on the desktop:
//
//   $ go install github.com/kehaowei/opengl-lessons/lesson1 && lesson1
//
// Scene parameters are read from the optional asset lesson.yaml.
package main

import (
	"log"

	"github.com/kehaowei/opengl-lessons/host"
	"github.com/kehaowei/opengl-lessons/lesson"
)

func main() {
	cfg, err := lesson.LoadConfigAsset(lesson.ConfigAsset)
	if err != nil {
		log.Printf("error loading %s, using defaults: %v", lesson.ConfigAsset, err)
	}
	host.Main(func() lesson.Renderer {
		return lesson.NewTriangle(cfg)
	}, host.Options{ShowFPS: cfg.ShowFPS})
}
