// Package quad holds the GPU-independent half of a textured quad demo: the
// vertex layout and geometry, a fixed camera, the world-view-projection
// transform, startup configuration, shader and texture file loading, and the
// single-phase render loop.
//
// The OpenGL side lives in package backend/opengl. A typical program opens a
// window, loads the GPU resources and runs the loop until the window closes:
//
//	cfg := quad.DefaultConfig()
//	window, err := opengl.OpenWindow(cfg.Window)
//	if err != nil {
//		return err
//	}
//	defer window.Close()
//
//	renderer, err := opengl.Load(cfg)
//	if err != nil {
//		return err
//	}
//	defer renderer.Delete()
//
//	quad.NewLoop(window, renderer, quad.NewScene(cfg, nil)).Run()
//
// # Conventions
//
// Matrices are mgl32.Mat4 values in column-major order and are uploaded
// without transposition. The camera and projection are left-handed: the
// default camera sits at the origin looking down +Z, and clip-space W is the
// view-space depth. Front faces wind clockwise.
package quad
