package ui

import (
	"testing"

	"github.com/automoto/neon-reverie/fonts"
	"github.com/automoto/neon-reverie/layout"
)

func loadTestFonts() {
	fonts.LoadDefaults(fonts.Sizes{HUD: 11, Sign: 14, Heading: 40, Body: 15, Tag: 12})
}

func testCaption() layout.Caption {
	return layout.Caption{
		Tags:    []string{"Sequence VII", "Slow Motion"},
		Heading: "Neon Reverie: Midnight Walk",
		Body:    "A lone figure crosses the rain-slick boulevard while the skyline hums above in electric hues.",
	}
}

func TestNewCaptionUI(t *testing.T) {
	loadTestFonts()
	caption := testCaption()
	cui := NewCaptionUI(caption)

	if cui.UI == nil || cui.UI.Container == nil {
		t.Fatal("caption card has no root container")
	}
	if cui.heading.Label != caption.Heading {
		t.Fatalf("heading = %q, want %q", cui.heading.Label, caption.Heading)
	}
	// The body is one text widget; ebitenui wraps it by measured width.
	if cui.body.Label != caption.Body {
		t.Fatalf("body = %q, want %q", cui.body.Label, caption.Body)
	}
}

func TestSetCaptionRebuildsOnChange(t *testing.T) {
	loadTestFonts()
	caption := testCaption()
	cui := NewCaptionUI(caption)
	root := cui.UI

	same := testCaption()
	cui.SetCaption(same)
	if cui.UI != root {
		t.Fatal("unchanged caption rebuilt the card")
	}

	edited := testCaption()
	edited.Body = "Rain again."
	cui.SetCaption(edited)
	if cui.UI == root {
		t.Fatal("edited caption kept the old card")
	}
	if cui.body.Label != "Rain again." {
		t.Fatalf("body = %q after edit", cui.body.Label)
	}
}

func TestCaptionEqual(t *testing.T) {
	a := testCaption()
	b := testCaption()
	if !captionEqual(a, b) {
		t.Fatal("identical captions should be equal")
	}
	b.Tags = []string{"Sequence VII"}
	if captionEqual(a, b) {
		t.Fatal("different tags should not be equal")
	}
	c := testCaption()
	c.Heading = "other"
	if captionEqual(a, c) {
		t.Fatal("different headings should not be equal")
	}
}
