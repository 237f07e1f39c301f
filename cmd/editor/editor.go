package main

import (
	"fmt"

	"github.com/gabstv/ebiten-imgui/renderer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"waveland/src/editor"
	"waveland/src/editor/edgui"
)

func main() {
	mgr := renderer.New(nil)

	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Waveland")

	gg := &G{
		mgr: mgr,
		ed:  editor.New(mgr),
	}

	gg.ed.AddTrack("Left", 44100)
	gg.ed.AddTrack("Right", 44100)

	trackNumber := 0
	gg.ed.AddMenu(edgui.Menu{
		Name: "File",
		Items: []*edgui.MenuItem{
			{
				Text: "Add Track",
				Action: func(self *edgui.MenuItem) {
					trackNumber++
					gg.ed.AddTrack(fmt.Sprintf("Track %d", trackNumber), 44100)
				},
			},
		},
	})

	ebiten.RunGame(gg)
}

// G hosts the editor inside an ebiten game loop.
type G struct {
	mgr  *renderer.Manager
	ed   *editor.Editor
	w, h int
}

func (g *G) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.3f\nFPS: %.2f\n", ebiten.ActualTPS(), ebiten.ActualFPS()), 11, 20)
	g.mgr.Draw(screen)
}

func (g *G) Update() error {
	g.mgr.Update(1.0 / 60.0)
	g.mgr.BeginFrame()
	err := g.ed.Update(1.0 / float32(ebiten.ActualTPS()))
	g.mgr.EndFrame()
	return err
}

func (g *G) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w = outsideWidth
	g.h = outsideHeight
	g.mgr.SetDisplaySize(float32(g.w), float32(g.h))
	return g.w, g.h
}
