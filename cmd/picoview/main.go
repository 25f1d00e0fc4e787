// picoview - Terminal viewer for the pico3d rasterizer
// Renders a GLB model in the terminal using half-block cells.
//
// Controls:
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation and zoom
//	T           - Toggle texture on/off
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/picogfx/pico3d/pkg/material"
	"github.com/picogfx/pico3d/pkg/math3d"
	"github.com/picogfx/pico3d/pkg/mesh"
	"github.com/picogfx/pico3d/pkg/raster"
)

var (
	texturePath = flag.String("texture", "", "Path to texture image (PNG/JPG)")
	targetFPS   = flag.Int("fps", 30, "Target FPS")
	bgColor     = flag.String("bg", "20,20,30", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "picoview - Terminal viewer for pico3d\n\n")
		fmt.Fprintf(os.Stderr, "Usage: picoview [options] <model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate model\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  T           - Toggle texture\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// RotationAxis tracks position and velocity for one rotation axis with
// spring decay.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewRotationAxis creates an axis whose velocity decays toward zero on a
// critically damped spring.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward zero.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// RotationState holds the three rotation axes.
type RotationState struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

func NewRotationState(fps int) *RotationState {
	return &RotationState{
		Pitch: NewRotationAxis(fps),
		Yaw:   NewRotationAxis(fps),
		Roll:  NewRotationAxis(fps),
		fps:   fps,
	}
}

func (r *RotationState) Update() {
	r.Pitch.Update()
	r.Yaw.Update()
	r.Roll.Update()
}

func (r *RotationState) ApplyImpulse(pitch, yaw, roll float64) {
	r.Pitch.Velocity += pitch
	r.Yaw.Velocity += yaw
	r.Roll.Velocity += roll
}

func (r *RotationState) Reset() {
	r.Pitch = NewRotationAxis(r.fps)
	r.Yaw = NewRotationAxis(r.fps)
	r.Roll = NewRotationAxis(r.fps)
}

// Quaternion returns the composed model rotation.
func (r *RotationState) Quaternion() math3d.Quaternion {
	return math3d.FromEuler(
		float32(r.Pitch.Position),
		float32(r.Yaw.Position),
		float32(r.Roll.Position),
	)
}

// pixelBuffer is the viewer-owned pixel store the rasterizer shades into.
// Two pixel rows map onto one terminal row using the upper half block,
// with the top pixel as foreground and the bottom pixel as background.
type pixelBuffer struct {
	width  int
	height int
	pixels []material.RGB
}

func newPixelBuffer(width, height int) *pixelBuffer {
	return &pixelBuffer{
		width:  width,
		height: height,
		pixels: make([]material.RGB, width*height),
	}
}

func (f *pixelBuffer) set(x, y int, c material.RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = c
}

func (f *pixelBuffer) get(x, y int) material.RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return material.RGB{}
	}
	return f.pixels[y*f.width+x]
}

func (f *pixelBuffer) clear(c material.RGB) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Draw converts the pixel buffer to terminal cells.
func (f *pixelBuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < f.width; col++ {
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: f.get(col, topY).RGBA(),
					Bg: f.get(col, botY).RGBA(),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

func run(modelPath string) error {
	var bgR, bgG, bgB uint8 = 20, 20, 30
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)
	background := material.NewRGB(bgR, bgG, bgB)

	ext := strings.ToLower(filepath.Ext(modelPath))
	if ext != ".glb" && ext != ".gltf" {
		return fmt.Errorf("unsupported format: %s (use .glb)", ext)
	}

	base, embeddedImg, err := mesh.LoadGLBWithTexture(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	var mat material.Material
	if *texturePath != "" {
		tex, err := material.Load(*texturePath)
		if err != nil {
			fmt.Printf("Warning: could not load texture: %v\n", err)
		} else {
			mat = tex
		}
	}
	if mat == nil && embeddedImg != nil {
		mat = material.FromImage(embeddedImg)
	}
	if mat == nil {
		mat = material.NewChecker(64, 64, 8,
			material.NewRGB(200, 200, 200), material.NewRGB(100, 100, 100))
	}
	solid := material.NewSolid(material.NewRGB(200, 200, 200))

	// Normalize the model so it spans about two units around the origin
	size := base.Size()
	maxDim := math3d.Max3(size.X, size.Y, size.Z)
	if maxDim > 0 {
		base.Translate(base.Center().Negate())
		base.ScaleUniform(2 / maxDim)
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // SGR extended mouse mode

	fb := newPixelBuffer(width, height*2)

	rotation := NewRotationState(*targetFPS)
	textureOn := true
	zoom := float32(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	inputTorque := struct{ pitch, yaw, roll float64 }{}
	const torqueStrength = 3.0

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = newPixelBuffer(width, height*2)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					rotation.Reset()
					zoom = 1
				case ev.MatchString("w", "up"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("q"):
					inputTorque.roll = -torqueStrength
				case ev.MatchString("e"):
					inputTorque.roll = torqueStrength
				case ev.MatchString("space"):
					rotation.ApplyImpulse(
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
						(rand.Float64()-0.5)*1.5,
					)
				case ev.MatchString("+", "="):
					zoom = math3d.Clamp(zoom*1.1, 0.2, 5)
				case ev.MatchString("-", "_"):
					zoom = math3d.Clamp(zoom/1.1, 0.2, 5)
				case ev.MatchString("t"):
					textureOn = !textureOn
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				case ev.MatchString("q"), ev.MatchString("e"):
					inputTorque.roll = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					rotation.ApplyImpulse(float64(dy)*0.03, float64(dx)*0.03, 0)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					zoom = math3d.Clamp(zoom*1.1, 0.2, 5)
				case uv.MouseWheelDown:
					zoom = math3d.Clamp(zoom/1.1, 0.2, 5)
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	scratch := base.Clone()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		rotation.ApplyImpulse(inputTorque.pitch/60, inputTorque.yaw/60, inputTorque.roll/60)
		inputTorque.pitch *= 0.9
		inputTorque.yaw *= 0.9
		inputTorque.roll *= 0.9
		rotation.Update()

		// Rotate a scratch copy of the model, then push it away from the
		// camera so every vertex sits in front of it
		copy(scratch.Positions, base.Positions)
		scratch.Transform(math3d.NewTransform(math3d.V3(0, 0, -5), rotation.Quaternion()))

		// The camera scale maps model units to pixels; terminal cells are
		// about twice as tall as wide, which the half blocks compensate
		pxW, pxH := fb.width, fb.height
		span := min(float32(pxW), float32(pxH)) / 2
		unit := zoom * span / 1.5
		cam := math3d.NewTransform(math3d.Zero3(), math3d.QuaternionIdentity())
		cam.Scale = math3d.V3(1/unit, 1/unit, 1)

		region := raster.RectFromCenter(math3d.Zero2(), math3d.V2(float32(pxW), float32(pxH)))

		active := mat
		if !textureOn {
			active = solid
		}
		pass := raster.NewPass(scratch, cam, math3d.QuaternionIdentity(), active, region)

		fb.clear(background)
		for py := range pxH {
			sy := float32(pxH)/2 - float32(py) - 0.5
			for px := range pxW {
				sx := float32(px) - float32(pxW)/2 + 0.5
				if c, hit := pass.Shade(sx, sy); hit {
					fb.set(px, py, c)
				}
			}
		}

		area := uv.Rect(0, 0, width, height)
		fb.Draw(term, area)
		if err := term.Display(); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
