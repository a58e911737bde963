// Package host runs a lesson.Renderer inside a golang.org/x/mobile app.
//
// The app's lifecycle, size and paint events stand in for the surface
// callbacks of a GL surface view: the renderer is initialized when the app
// becomes visible, resized on every size event and drawn continuously while
// visible. Tapping the screen pauses and resumes the animation.
package host

import (
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"

	"github.com/kehaowei/opengl-lessons/lesson"
)

// Options controls how Main hosts a renderer.
type Options struct {
	// RequireES2 refuses to start the renderer on contexts that cannot run
	// OpenGL ES 2.0 shaders.
	RequireES2 bool

	// ShowFPS draws a frame rate counter over the scene.
	ShowFPS bool
}

// Main runs the app event loop and never returns. newRenderer is called
// each time a GL context becomes available.
func Main(newRenderer func() lesson.Renderer, opts Options) {
	app.Main(func(a app.App) {
		s := &surface{newRenderer: newRenderer, opts: opts}
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ := e.DrawContext.(gl.Context)
					s.start(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					s.stop()
				}
			case size.Event:
				s.resize(e)
			case paint.Event:
				if s.glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}

				animating := s.paint()
				a.Publish()
				if animating {
					// Drive the animation by preparing to paint the next
					// frame after this one is shown.
					a.Send(paint.Event{})
				}
			case touch.Event:
				if e.Type == touch.TypeEnd && s.clock != nil {
					s.clock.Toggle()
				}
			}
		}
	})
}

// surface tracks the GL context and the renderer bound to it.
type surface struct {
	newRenderer func() lesson.Renderer
	opts        Options

	glctx    gl.Context
	renderer lesson.Renderer
	clock    *lesson.Clock
	sz       size.Event

	images *glutil.Images
	fps    *debug.FPS
}

func (s *surface) start(glctx gl.Context) {
	log := lesson.Logger()
	s.glctx = glctx
	if glctx == nil {
		log.Error("app became visible without a GL context")
		return
	}

	caps, err := lesson.ParseCapabilities(glctx.GetString(gl.VERSION))
	if err != nil {
		log.Warn("unable to determine GL version", "err", err)
	}
	if s.opts.RequireES2 && !caps.SupportsES2() {
		log.Error("OpenGL ES 2.0 is not supported, not rendering", "version", caps.Version)
		return
	}

	s.renderer = s.newRenderer()
	s.renderer.Init(glctx, caps)
	if s.clock == nil {
		s.clock = lesson.NewClock(nil)
	}
	if s.sz.WidthPx > 0 || s.sz.HeightPx > 0 {
		s.renderer.Resize(s.sz.WidthPx, s.sz.HeightPx)
	}

	if s.opts.ShowFPS {
		s.images = glutil.NewImages(glctx)
		s.fps = debug.NewFPS(s.images)
	}
}

func (s *surface) stop() {
	if s.renderer != nil {
		s.renderer.Release()
		s.renderer = nil
	}
	if s.fps != nil {
		s.fps.Release()
		s.images.Release()
		s.fps, s.images = nil, nil
	}
	s.glctx = nil
}

func (s *surface) resize(sz size.Event) {
	s.sz = sz
	if s.renderer != nil {
		s.renderer.Resize(sz.WidthPx, sz.HeightPx)
	}
}

// paint draws one frame and reports whether another should follow. Without
// a renderer the screen is cleared once and painting stops.
func (s *surface) paint() bool {
	if s.renderer == nil {
		s.glctx.ClearColor(0, 0, 0, 1)
		s.glctx.Clear(gl.COLOR_BUFFER_BIT)
		return false
	}
	s.renderer.Draw(s.clock.Millis())
	if s.fps != nil {
		s.fps.Draw(s.sz)
	}
	return true
}
