package ebitenhost

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/thicket"
)

// globalDebug mirrors the debug mode of the hosted GUI (no locking: the
// host is single-threaded).
var globalDebug bool

// Defaults for RunConfig fields left zero.
const (
	defaultWidth         = 640
	defaultHeight        = 480
	defaultScale         = 2
	defaultScreenshotDir = "screenshots"
)

// RunConfig configures the window and the host services of a Screen.
type RunConfig struct {
	Title  string // window title; defaults to the GUI title
	Width  int    // window width in device-independent pixels
	Height int    // window height in device-independent pixels
	Scale  int    // each GUI pixel covers Scale x Scale window pixels; defaults to 2

	// ConfigPath names an optional YAML file (see Config) whose settings
	// override the fields below.
	ConfigPath string

	Atlas         *Atlas
	Font          *Face   // defaults to Go Regular at FontSize
	FontSize      float64 // defaults to DefaultFontSize
	WheelScale    float64 // wheel delta multiplier; defaults to 1
	ClearColor    thicket.Color
	ShowFPS       bool
	ScreenshotDir string

	// TestScript, when set, is a JSON script run by a TestRunner.
	// ExitWhenScriptDone ends the game loop once the script completes.
	TestScript         []byte
	ExitWhenScriptDone bool
}

// Screen is an ebiten.Game hosting a GUI. Every tick it polls input; every
// frame it lays out and paints the GUI and replays the draw list.
type Screen struct {
	gui    *thicket.GUI
	canvas *Canvas
	cfg    RunConfig

	width, height    int
	originX, originY int

	pointer         pointerState
	keys            []ebiten.Key
	chars           []rune
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
	screenshotDir   string
	fps             *fpsOverlay
	lastTick        time.Time
}

// NewScreen creates a screen for g. The GUI's font is replaced by the
// host face so layout measures text the way the canvas draws it.
func NewScreen(g *thicket.GUI, cfg RunConfig) (*Screen, error) {
	if g == nil {
		return nil, fmt.Errorf("thicket: NewScreen: nil GUI")
	}
	if cfg.ConfigPath != "" {
		fileCfg, err := LoadConfigFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfig(cfg, fileCfg)
		fileCfg.Apply(g)
	}
	cfg = withDefaults(cfg)
	globalDebug = g.DebugMode()

	face := cfg.Font
	if face == nil {
		var err error
		if face, err = DefaultFace(cfg.FontSize); err != nil {
			return nil, err
		}
	}
	g.SetFont(face)

	s := &Screen{
		gui:           g,
		canvas:        NewCanvas(cfg.Atlas, face),
		cfg:           cfg,
		screenshotDir: cfg.ScreenshotDir,
	}
	if cfg.ShowFPS {
		s.fps = &fpsOverlay{}
	}
	if cfg.TestScript != nil {
		runner, err := LoadTestScript(cfg.TestScript)
		if err != nil {
			return nil, err
		}
		s.testRunner = runner
	}
	return s, nil
}

// mergeConfig overlays the non-zero fields of a config file.
func mergeConfig(cfg RunConfig, file Config) RunConfig {
	if file.FontSize > 0 {
		cfg.FontSize = file.FontSize
	}
	if file.WheelScale > 0 {
		cfg.WheelScale = file.WheelScale
	}
	if file.ShowFPS {
		cfg.ShowFPS = true
	}
	if file.ScreenshotDir != "" {
		cfg.ScreenshotDir = file.ScreenshotDir
	}
	return cfg
}

func withDefaults(cfg RunConfig) RunConfig {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Scale <= 0 {
		cfg.Scale = defaultScale
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = DefaultFontSize
	}
	if cfg.WheelScale <= 0 {
		cfg.WheelScale = 1
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	return cfg
}

// GUI returns the hosted GUI.
func (s *Screen) GUI() *thicket.GUI { return s.gui }

// Canvas returns the canvas draw lists are replayed with.
func (s *Screen) Canvas() *Canvas { return s.canvas }

// Origin returns the screen position of the GUI origin.
func (s *Screen) Origin() (x, y int) { return s.originX, s.originY }

// TestRunner returns the attached test runner, or nil.
func (s *Screen) TestRunner() *TestRunner { return s.testRunner }

// Update implements ebiten.Game.
func (s *Screen) Update() error {
	globalDebug = s.gui.DebugMode()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	now := time.Now()
	if s.fps != nil && !s.lastTick.IsZero() {
		s.fps.update(now.Sub(s.lastTick))
	}
	s.lastTick = now
	if s.cfg.ExitWhenScriptDone && s.testRunner != nil && s.testRunner.Done() &&
		len(s.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (s *Screen) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(s.cfg.ClearColor))
	list := s.gui.Render(s.originX, s.originY, s.pointer.lastX, s.pointer.lastY)
	s.canvas.Submit(screen, list)
	if s.fps != nil {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The logical screen is the window divided
// by the GUI scale.
func (s *Screen) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.arrange(max(outsideWidth/s.cfg.Scale, 1), max(outsideHeight/s.cfg.Scale, 1))
	return s.width, s.height
}

// arrange sizes a fullscreen root to the screen, or centers a fixed-size
// root on it.
func (s *Screen) arrange(width, height int) {
	s.width, s.height = width, height
	root := s.gui.Root()
	if s.gui.IsFullscreen() {
		root.SetSize(width, height)
		s.originX, s.originY = 0, 0
		return
	}
	b := thicket.BoundsOf(root)
	s.originX = max((width-b.Width)/2, 0)
	s.originY = max((height-b.Height)/2, 0)
}

// Run opens a window and runs g until the window closes, the script ends
// with ExitWhenScriptDone, or the loop fails.
func Run(g *thicket.GUI, cfg RunConfig) error {
	s, err := NewScreen(g, cfg)
	if err != nil {
		return err
	}
	title := s.cfg.Title
	if title == "" {
		title = g.Title()
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(s.cfg.Width, s.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(s)
}
