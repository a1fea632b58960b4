package ui

import (
	"slices"
	"strings"

	cfg "github.com/automoto/neon-reverie/config"
	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/layout"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CaptionUI is the title card drawn over the frame, outside the tilted scene.
type CaptionUI struct {
	UI *ebitenui.UI

	caption layout.Caption
	heading *widget.Label
	body    *widget.Text

	headingFace text.Face
	bodyFace    text.Face
	tagFace     text.Face
}

// NewCaptionUI builds the card for caption. The faces come from the fonts
// package, so fonts.LoadDefaults must have run.
func NewCaptionUI(caption layout.Caption) *CaptionUI {
	cui := &CaptionUI{}
	cui.loadFonts()
	cui.SetCaption(caption)
	return cui
}

func (cui *CaptionUI) loadFonts() {
	cui.headingFace = text.NewGoXFace(fonts.Heading.Get())
	cui.bodyFace = text.NewGoXFace(fonts.Body.Get())
	cui.tagFace = text.NewGoXFace(fonts.Tag.Get())
}

// SetCaption rebuilds the card when the caption changed.
func (cui *CaptionUI) SetCaption(caption layout.Caption) {
	if cui.UI != nil && captionEqual(cui.caption, caption) {
		return
	}
	cui.caption = caption
	cui.buildUI()
}

func (cui *CaptionUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Left: 40, Bottom: 48}
	card := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	card.AddChild(cui.buildTags())

	cui.heading = widget.NewLabel(
		widget.LabelOpts.Text(cui.caption.Heading, &cui.headingFace, &widget.LabelColor{
			Idle: cfg.UI.CaptionHeading,
		}),
	)
	card.AddChild(cui.heading)

	cui.body = widget.NewText(
		widget.TextOpts.Text(cui.caption.Body, &cui.bodyFace, cfg.UI.CaptionBody),
		widget.TextOpts.MaxWidth(cfg.UI.CaptionWidth),
	)
	card.AddChild(cui.body)

	rootContainer.AddChild(card)

	cui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// buildTags lays the tag chips in a row. Every other chip takes the pink tint.
func (cui *CaptionUI) buildTags() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
		)),
	)

	for i, tag := range cui.caption.Tags {
		tint := cfg.Fade(cfg.Cyan200, 0.15)
		if i%2 == 1 {
			tint = cfg.Fade(cfg.Pink400, 0.15)
		}
		padding := widget.Insets{Top: 8, Bottom: 8, Left: 16, Right: 16}
		chip := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(tint)),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Padding(&padding),
			)),
		)
		chip.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(strings.ToUpper(tag), &cui.tagFace, &widget.LabelColor{
				Idle: cfg.UI.CaptionTagColor,
			}),
		))
		row.AddChild(chip)
	}
	return row
}

func (cui *CaptionUI) Update() {
	cui.UI.Update()
}

func (cui *CaptionUI) Draw(screen *ebiten.Image) {
	cui.UI.Draw(screen)
}

func captionEqual(a, b layout.Caption) bool {
	return a.Heading == b.Heading && a.Body == b.Body && slices.Equal(a.Tags, b.Tags)
}
