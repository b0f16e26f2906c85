package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilemapeditor/canvas"
	"github.com/milk9111/tilemapeditor/config"
	"github.com/milk9111/tilemapeditor/editor"
	"github.com/milk9111/tilemapeditor/input"
	"github.com/milk9111/tilemapeditor/storage"
	"github.com/milk9111/tilemapeditor/ui"
)

var errNoDialog = errors.New("native file dialog unavailable; build with -tags dialog to enable")

const statusFrames = 180

// Game wires the editor to an ebiten window.
type Game struct {
	cfg  config.Config
	ed   *editor.Editor
	menu *ui.Screen
	in   *input.State
	surf *ebitenSurface
	face text.Face

	ui     *ebitenui.UI
	prompt *requestPrompt

	watcher   *storage.Watcher
	clipboard bool

	// name is the entity last loaded or saved, used by quick save.
	name string

	lastX, lastY int
	status       string
	statusTicks  int
}

func newGame(cfg config.Config, ed *editor.Editor) *Game {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 12}

	g := &Game{
		cfg:       cfg,
		ed:        ed,
		menu:      ui.NewScreen(ed, ui.DefaultMenu(cfg.ScreenWidth)...),
		in:        input.New(),
		surf:      newEbitenSurface(),
		face:      fontFace,
		clipboard: initClipboard(),
	}

	theme := newEditorTheme(&fontFace, cfg.ClearColor.NRGBA())
	g.prompt = newRequestPrompt(theme, &fontFace, g.answer)
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(g.prompt.Overlay)
	g.ui = &ebitenui.UI{Container: root, PrimaryTheme: theme}

	if w, err := ed.Store().Watch(); err != nil {
		log.Printf("Hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTicks = statusFrames
	log.Println(g.status)
}

// answer resolves a request with the text the user submitted.
func (g *Game) answer(req editor.Request, answer string) {
	answer = strings.TrimSpace(answer)
	if err := req.Resolve(g.ed, answer); err != nil {
		g.setStatus("%s: %v", req.Prompt(), err)
		return
	}
	switch r := req.(type) {
	case editor.SaveRequest:
		g.name = answer
		g.setStatus("Saved %s", answer)
	case editor.LoadRequest:
		if r.Target != editor.LoadPalette {
			g.name = answer
		}
		g.setStatus("Loaded %s", answer)
	case editor.NewTileSheetRequest, editor.NewTileMapRequest:
		g.name = ""
	}
}

func (g *Game) Update() error {
	pollInput(g.in)
	g.drainWatcher()
	g.ui.Update()
	if g.statusTicks > 0 {
		g.statusTicks--
	}

	mx, my := ebiten.CursorPosition()
	defer func() { g.lastX, g.lastY = mx, my }()

	if g.prompt.IsOpen() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.prompt.Close()
		}
		return nil
	}

	g.handleShortcuts()

	g.menu.Aim(mx, my)
	if g.in.IsButtonPressed(input.ButtonLeft) {
		if req, ok := g.menu.Click(mx, my); ok {
			if req != nil {
				g.prompt.Open(req)
			}
			return nil
		}
	}
	if g.in.IsButtonHeld(input.ButtonLeft) && g.menu.Contains(mx, my) {
		return nil
	}
	g.ed.Update(g.in, mx, my, g.lastX, g.lastY)
	return nil
}

func (g *Game) handleShortcuts() {
	switch sc := ui.ShortcutFor(g.in, shortcutKeys); sc {
	case ui.ShortcutSave:
		g.quickSave()
	case ui.ShortcutCopyColor:
		g.copyColor()
	case ui.ShortcutCopyCanvas:
		g.copyCanvas()
	case ui.ShortcutOpenMap:
		g.openFile(editor.LoadTileMap)
	case ui.ShortcutOpenSheet:
		g.openFile(editor.LoadTileSheet)
	default:
		ui.ApplyShortcut(g.ed, sc)
	}
}

func (g *Game) quickSave() {
	if g.ed.Mode() == editor.ModeNone {
		return
	}
	if g.name == "" {
		g.prompt.Open(editor.SaveRequest{})
		return
	}
	g.answer(editor.SaveRequest{}, g.name)
}

func (g *Game) openFile(target editor.LoadTarget) {
	req := editor.LoadRequest{Target: target}
	path, err := pickFile(req.Prompt())
	switch {
	case errors.Is(err, errNoDialog):
		g.prompt.Open(req)
	case err != nil:
		g.setStatus("Open failed: %v", err)
	case path != "":
		g.answer(req, storage.NameOf(path))
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if name != g.ed.PaletteName() {
				continue
			}
			reloaded, err := g.ed.ReloadPalette(name)
			if err != nil {
				g.setStatus("Reload %s: %v", name, err)
			} else if reloaded {
				g.setStatus("Reloaded palette %s", name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Watcher error: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.NRGBA())

	g.surf.Begin(screen)
	g.ed.Draw(g.surf)
	g.surf.End()

	drawMenu(screen, g.menu.Visible(), g.face)

	hud := fmt.Sprintf("%s  %s  %s", g.ed.Mode(), g.ed.Tool(), canvas.Hex(g.ed.Color()))
	if g.name != "" {
		hud += "  " + g.name
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, g.cfg.ScreenHeight-16)
	if g.statusTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 4, g.cfg.ScreenHeight-32)
	}

	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
