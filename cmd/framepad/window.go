package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/framepad/internal/application/replay"
	"github.com/younwookim/framepad/internal/domain/input"
	"github.com/younwookim/framepad/internal/infrastructure/config"
	"github.com/younwookim/framepad/internal/infrastructure/keyboard"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorReleased = color.RGBA{60, 60, 60, 255}
	colorPressed  = color.RGBA{100, 200, 100, 255}
)

// padWindow draws the controller state shared by the record and play windows
type padWindow struct {
	width, height int
	title         string
	frame         int
	buttons       input.Combination
}

func (w *padWindow) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func (w *padWindow) drawPad(screen *ebiten.Image) {
	screen.Fill(colorBG)

	names := make([]string, 0, len(input.AllButtons))
	for _, b := range w.buttons.Buttons() {
		names = append(names, b.String())
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nframe %d\n%s", w.title, w.frame, strings.Join(names, " ")))

	// One box per button in display order
	const size, gap = 16.0, 6.0
	y := float64(w.height) - size - gap
	for i, b := range input.DisplayOrder {
		clr := colorReleased
		if w.buttons.IsPressed(b) {
			clr = colorPressed
		}
		x := gap + float64(i)*(size+gap)
		ebitenutil.DrawRect(screen, x, y, size, size, clr)
		ebitenutil.DebugPrintAt(screen, b.String()[:1], int(x)+5, int(y)+1)
	}
}

// recordWindow captures one controller state per tick
type recordWindow struct {
	padWindow
	source      *keyboard.Source
	recorder    *replay.Recorder
	stopPressed func() bool
}

func (w *recordWindow) Update() error {
	if w.stopPressed() {
		w.recorder.Stop()
		return ebiten.Termination
	}

	w.buttons = w.source.Poll()
	w.frame = w.recorder.FrameCount()
	w.recorder.RecordFrame(w.buttons)
	return nil
}

func (w *recordWindow) Draw(screen *ebiten.Image) {
	w.drawPad(screen)
}

// playWindow replays recorded controller data
type playWindow struct {
	padWindow
	replayer *replay.Replayer
	loop     bool
}

func (w *playWindow) Update() error {
	w.frame = w.replayer.CurrentFrame()
	buttons, ok := w.replayer.GetInput()
	if !ok {
		if !w.loop || w.replayer.TotalFrames() == 0 {
			return ebiten.Termination
		}
		w.replayer.Reset()
		w.frame = 0
		buttons, _ = w.replayer.GetInput()
	}
	w.buttons = buttons
	return nil
}

func (w *playWindow) Draw(screen *ebiten.Image) {
	w.drawPad(screen)
}

func runWindow(cfg *config.Config, title string, game ebiten.Game) error {
	ebiten.SetWindowSize(cfg.Recorder.ScreenWidth*cfg.Recorder.Scale, cfg.Recorder.ScreenHeight*cfg.Recorder.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.Recorder.TPS)

	return ebiten.RunGame(game)
}

func recordCmd(e *env, args []string) error {
	f := newFlags("record")
	out := f.fs.String("o", "", "Output file (default: generated name in recorder.outputDir)")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	bindings, err := keyboard.ParseBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	var stopKey ebiten.Key
	if err := stopKey.UnmarshalText([]byte(cfg.Recorder.StopKey)); err != nil {
		return fmt.Errorf("invalid stop key: %w", err)
	}

	filename := *out
	if filename == "" {
		filename = filepath.Join(cfg.Recorder.OutputDir, replay.GenerateFilename())
	}

	window := &recordWindow{
		padWindow: padWindow{
			width:  cfg.Recorder.ScreenWidth,
			height: cfg.Recorder.ScreenHeight,
			title:  "REC (" + cfg.Recorder.StopKey + " to stop)",
		},
		source:      keyboard.NewSource(bindings),
		recorder:    replay.NewRecorder(),
		stopPressed: func() bool { return inpututil.IsKeyJustPressed(stopKey) },
	}

	log.Printf("Recording enabled: %s", filename)
	if err := runWindow(cfg, "framepad record", window); err != nil {
		return err
	}

	if err := window.recorder.Save(filename); err != nil {
		return fmt.Errorf("failed to save recording: %w", err)
	}
	log.Printf("Recording saved: %s (%d frames)", filename, window.recorder.FrameCount())

	return e.writeOutput("", []byte(window.recorder.Timeline().String()+"\n"))
}

func playCmd(e *env, args []string) error {
	f := newFlags("play")
	loop := f.fs.Bool("loop", false, "Restart when the recording ends")
	cfg, err := f.parse(args)
	if err != nil {
		return err
	}

	path := f.fs.Arg(0)
	if path == "" {
		return fmt.Errorf("play needs a %s file: %w", BinaryExt, errUsage)
	}

	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	window := &playWindow{
		padWindow: padWindow{
			width:  cfg.Recorder.ScreenWidth,
			height: cfg.Recorder.ScreenHeight,
			title:  "PLAY " + filepath.Base(path),
		},
		replayer: replay.NewReplayer(*data),
		loop:     *loop,
	}

	log.Printf("Playing %s (%d frames)", path, window.replayer.TotalFrames())
	return runWindow(cfg, "framepad play", window)
}
