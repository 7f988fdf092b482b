package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vibecoded/badtime/common"
	"github.com/vibecoded/badtime/settings"
	"github.com/vibecoded/badtime/shell"
)

// ConfigScene overlays the settings dialog on top of the scene that opened
// it. Closing returns to that scene.
type ConfigScene struct {
	game *Game
	prev Scene
	it   *shell.Interpreter

	ui *ebitenui.UI
}

func NewConfigScene(g *Game, prev Scene, it *shell.Interpreter) *ConfigScene {
	s := &ConfigScene{game: g, prev: prev, it: it}
	s.rebuild()
	return s
}

// rebuild recreates the dialog; button labels carry the current values, so
// any toggle rebuilds the whole thing.
func (s *ConfigScene) rebuild() {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 220})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	cfg := s.game.settings.Get()

	langLabel := "Language: English"
	if cfg.Language == settings.LangTurkish {
		langLabel = "Language: Turkce"
	}

	title := widget.NewText(
		widget.TextOpts.Text("Settings", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(center),
	)

	langBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(langLabel, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.toggleLanguage()
		}),
	)

	fsBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(fmt.Sprintf("Fullscreen: %v", cfg.Fullscreen), &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.toggleFullscreen()
		}),
	)

	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.close()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(langBtn)
	panel.AddChild(fsBtn)
	panel.AddChild(closeBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	s.ui = &ebitenui.UI{Container: root}
}

func (s *ConfigScene) toggleLanguage() {
	next := settings.LangTurkish
	if s.game.settings.Get().Language == settings.LangTurkish {
		next = settings.LangEnglish
	}
	s.game.settings.SetLanguage(next)
	s.rebuild()
}

// toggleFullscreen computes the new mode once so the window and the saved
// setting can't disagree.
func (s *ConfigScene) toggleFullscreen() {
	next := !s.game.settings.Get().Fullscreen
	s.game.settings.SetFullscreen(next)
	ebiten.SetFullscreen(next)
	s.rebuild()
}

func (s *ConfigScene) close() {
	if err := s.game.settings.Save(); err != nil {
		log.Printf("settings: %v", err)
	}
	if s.it != nil {
		s.it.SetLanguage(s.game.settings.Get().Language)
	}
	s.game.setScene(s.prev)
}

func (s *ConfigScene) Update(in *Input) error {
	if in.Cancel {
		s.close()
		return nil
	}
	s.ui.Update()
	return nil
}

func (s *ConfigScene) Draw(screen *ebiten.Image) {
	s.prev.Draw(screen)
	s.ui.Draw(screen)
}
