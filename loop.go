package quad

import "github.com/go-gl/mathgl/mgl32"

// Surface is the window a Loop presents frames to.
type Surface interface {
	ShouldClose() bool
	PollEvents()
	SwapBuffers()
}

// Drawer issues the draw calls for one frame.
type Drawer interface {
	Draw(wvp mgl32.Mat4)
}

// Loop renders a scene until its surface closes.
type Loop struct {
	surface   Surface
	drawer    Drawer
	scene     *Scene
	maxFrames uint64
	onFrame   func(n uint64)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithMaxFrames stops the loop after n frames. Zero means no limit.
func WithMaxFrames(n uint64) LoopOption {
	return func(l *Loop) { l.maxFrames = n }
}

// WithFrameHook calls fn after each frame is presented, with the count of
// frames drawn so far.
func WithFrameHook(fn func(n uint64)) LoopOption {
	return func(l *Loop) { l.onFrame = fn }
}

// NewLoop creates a render loop.
func NewLoop(surface Surface, drawer Drawer, scene *Scene, opts ...LoopOption) *Loop {
	l := &Loop{
		surface: surface,
		drawer:  drawer,
		scene:   scene,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run draws one frame per iteration until the surface reports it should
// close or the frame limit is reached. It returns the number of frames drawn.
func (l *Loop) Run() uint64 {
	var frames uint64
	for !l.surface.ShouldClose() {
		if l.maxFrames > 0 && frames >= l.maxFrames {
			break
		}

		l.surface.PollEvents()
		l.drawer.Draw(l.scene.Frame())
		l.surface.SwapBuffers()
		frames++

		if l.onFrame != nil {
			l.onFrame(frames)
		}
	}
	return frames
}
