package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/drawkit/drawing"
	"github.com/milk9111/drawkit/scene"
)

const (
	baseWidth  = 640
	baseHeight = 560
)

var backgroundColor = color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff}

type Game struct {
	sceneName string
	ids       *drawing.IDSource
	roots     []drawing.Drawable

	watcher  *scene.Watcher
	help     *helpUI
	showHelp bool
}

func NewGame(sceneName string) (*Game, error) {
	g := &Game{
		sceneName: sceneName,
		ids:       drawing.NewIDSource(),
		help:      newHelpUI(),
	}
	if err := g.reload(); err != nil {
		return nil, err
	}

	w, err := scene.NewWatcher("scenes")
	if err != nil {
		log.Printf("scene watching disabled: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reload() error {
	spec, err := scene.LoadScene(g.sceneName)
	if err != nil {
		return err
	}
	roots, err := scene.Build(g.ids, spec)
	if err != nil {
		return err
	}
	g.roots = roots
	return nil
}

func (g *Game) Update() error {
	for drained := g.watcher == nil; !drained; {
		select {
		case name := <-g.watcher.Events:
			if err := g.reload(); err != nil {
				// Keep drawing the last good scene.
				log.Printf("reload %s after %s changed: %v", g.sceneName, name, err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("scene watcher: %v", err)
		default:
			drained = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
	}
	if g.showHelp {
		g.help.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	dst := drawing.NewScreen(screen)
	for _, root := range g.roots {
		root.Draw(dst)
	}

	if g.showHelp {
		g.help.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
