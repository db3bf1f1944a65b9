// Package viewer runs the interactive terrain window: it moves a tracked
// point with the keyboard and streams chunks around it.
package viewer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/gridmesh/internal/config"
	"github.com/Faultbox/gridmesh/internal/engine/camera"
	"github.com/Faultbox/gridmesh/internal/engine/debug"
	"github.com/Faultbox/gridmesh/internal/engine/input"
	"github.com/Faultbox/gridmesh/internal/engine/renderer"
	"github.com/Faultbox/gridmesh/internal/engine/scene"
	"github.com/Faultbox/gridmesh/internal/engine/terrain"
	"github.com/Faultbox/gridmesh/internal/engine/window"
	"github.com/Faultbox/gridmesh/internal/logger"
	"github.com/Faultbox/gridmesh/internal/streaming"
	"github.com/Faultbox/gridmesh/pkg/grid"
	"github.com/Faultbox/gridmesh/pkg/math"
)

var skyColor = [4]float32{0.55, 0.7, 0.85, 1.0}

// Viewer is the interactive terrain viewer.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene

	world     *streaming.World
	terrainID uuid.UUID
	grid      *grid.Grid
	heightMap terrain.HeightMap
	tracker   *streaming.Point

	screenshots *debug.ScreenshotCapture
	capture     bool
	// bordersAt is the chunk the border overlay was last built around.
	bordersAt    grid.Vertex
	bordersBuilt bool

	log *zap.Logger
}

// New creates the window, GL state and streaming world.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg: cfg,
		log: logger.Named("viewer"),
	}

	var err error
	v.grid, err = cfg.Terrain.NewGrid()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	v.heightMap, err = cfg.HeightMap.Build()
	if err != nil {
		return nil, fmt.Errorf("height map: %w", err)
	}
	material, err := cfg.Material.Build()
	if err != nil {
		return nil, fmt.Errorf("material: %w", err)
	}

	// Window first, since it creates the OpenGL context
	v.window, err = window.New(window.Config{
		Title:      v.grid.Name(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := v.window.DrawableSize()
	viewDistance := v.viewDistance()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: skyColor,
		FOV:        cfg.Graphics.FOV,
		Near:       0.5,
		Far:        viewDistance*2 + 500,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	chunks, err := scene.NewChunkRenderer()
	if err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, err
	}
	lines, err := scene.NewLineRenderer()
	if err != nil {
		chunks.Destroy()
		v.renderer.Close()
		v.window.Close()
		return nil, err
	}
	fog := [3]float32{skyColor[0], skyColor[1], skyColor[2]}
	v.scene = scene.New(chunks, lines, camera.NewOrbitCamera(), scene.DefaultLighting(viewDistance, fog))
	v.screenshots = debug.NewScreenshotCapture("screenshots", "gridmesh")

	v.world, err = streaming.NewWorld(chunks, v.heightMap, material)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.tracker = streaming.NewPoint(v.groundAt(math.Vec3{}))
	v.terrainID, err = v.world.AddTerrain(v.grid, v.tracker)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()

	v.log.Info("viewer initialized",
		zap.Float32("view_distance", viewDistance),
		zap.String("height_map", cfg.HeightMap.Kind),
	)
	return v, nil
}

// viewDistance is the distance from the center chunk to the nearest edge
// of the visible window.
func (v *Viewer) viewDistance() float32 {
	g := v.grid
	x := float32(g.VisibleRange.X) * float32(g.ChunkSize.X) * g.QuadSize.X
	z := float32(g.VisibleRange.Z) * float32(g.ChunkSize.Z) * g.QuadSize.Y
	return min(x, z)
}

// groundAt returns p moved onto the terrain surface.
func (v *Viewer) groundAt(p math.Vec3) math.Vec3 {
	p.Y = v.heightMap.Height(p.X/v.grid.QuadSize.X, p.Z/v.grid.QuadSize.Y)
	return p
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Move the tracker and stream chunks
		v.update(float32(dt))

		// 3. Render
		v.renderer.Begin()
		v.scene.Render(v.renderer.Projection())
		v.renderer.End()
		if v.capture {
			v.screenshot()
			v.capture = false
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.updateTitle(frameCount)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_F:
				v.renderer.SetWireframe(!v.renderer.Wireframe())
			case sdl.SCANCODE_R:
				v.tracker.MoveTo(v.groundAt(math.Vec3{}))
			case sdl.SCANCODE_B:
				v.scene.ShowBorders = !v.scene.ShowBorders
				v.bordersBuilt = false
			case sdl.SCANCODE_F12:
				v.capture = true
			}
		}
	}
}

// toggleDebugLog flips between debug and the configured level.
func (v *Viewer) toggleDebugLog() {
	lvl := zapcore.DebugLevel
	if logger.Level() == zapcore.DebugLevel {
		lvl, _ = logger.ParseLevel(v.cfg.Logging.Level)
		if lvl == zapcore.DebugLevel {
			lvl = zapcore.InfoLevel
		}
	}
	logger.SetLevel(lvl)
	v.log.Info("log level changed", zap.Stringer("level", lvl))
}

func (v *Viewer) update(dt float32) {
	cam := v.scene.Camera
	cam.HandleDrag(v.input.Drag())
	if wheel := v.input.Wheel(); wheel != 0 {
		cam.HandleZoom(wheel)
	}

	forward, right, up := v.input.MoveAxis()
	if forward != 0 || right != 0 || up != 0 {
		speed := v.cfg.Graphics.MoveSpeed
		if v.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
			speed *= 4
		}
		v.tracker.Translate(cam.MoveDelta(forward, right, 0, speed*dt))
		pos, _ := v.tracker.Position()
		ground := v.groundAt(pos)
		// E/Q lift the camera target; without them it hugs the ground
		if up != 0 {
			ground.Y = pos.Y + up*speed*dt
		}
		v.tracker.MoveTo(ground)
	}

	pos, _ := v.tracker.Position()
	cam.Follow(pos)

	v.world.Tick()

	if v.scene.ShowBorders {
		v.updateBorders(pos)
	}
}

// updateBorders rebuilds the chunk outline overlay when the tracker has
// moved into another chunk.
func (v *Viewer) updateBorders(pos math.Vec3) {
	current := grid.ChunkFromTranslation(pos, v.grid.ChunkSize, v.grid.QuadSize).Origin
	if v.bordersBuilt && current == v.bordersAt {
		return
	}
	v.scene.Lines.Update(debug.ChunkBorders(v.grid, v.heightMap, current, 0.05))
	v.bordersAt = current
	v.bordersBuilt = true
}

func (v *Viewer) screenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) updateTitle(fps int) {
	pos, _ := v.tracker.Position()
	chunk := grid.ChunkFromTranslation(pos, v.grid.ChunkSize, v.grid.QuadSize)
	v.window.SetTitle(fmt.Sprintf("%s | %s | %d chunks | %d fps",
		v.window.Title(), chunk.Name(), v.scene.Chunks.Len(), fps))
	v.log.Debug("frame stats",
		zap.Int("fps", fps),
		zap.Stringer("chunk", chunk.Origin),
		zap.Int("live", v.scene.Chunks.Len()),
	)
}

// Close releases every resource in reverse creation order.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.world != nil {
		if err := v.world.RemoveTerrain(v.terrainID); err != nil {
			v.log.Warn("remove terrain", zap.Error(err))
		}
	}
	if v.scene != nil {
		v.scene.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
