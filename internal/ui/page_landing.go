package ui

import (
	"io"

	"blockpharm/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const heroText = "Some hero section explaining stuff with diagrams"

// PageMeta is the document metadata handed to the page head.
type PageMeta struct {
	Title       string
	Description string
	IconHref    string
}

// DefaultMeta returns the site metadata with the given title.
func DefaultMeta(title string) PageMeta {
	return PageMeta{
		Title:       title,
		Description: "Blockchain based insurance for the pharmaceutical industry",
		IconHref:    faviconPath,
	}
}

// LandingPage composes the landing view: head metadata, navigation, hero
// panel, one DisplayCard per input in the given order, and the footer.
func LandingPage(meta PageMeta, cards []domain.CardDisplayInput) Node {
	items := make([]Node, 0, len(cards))
	for i := range cards {
		items = append(items, Div(Class("landing-grid-item"), DisplayCard(cards[i])))
	}

	return sitePage(meta, "",
		Div(
			Class("landing-grid"),
			heroPanel(),
			Group(items),
		),
	)
}

// RenderLanding writes the full landing document to w.
func RenderLanding(w io.Writer, meta PageMeta, cards []domain.CardDisplayInput) error {
	return LandingPage(meta, cards).Render(w)
}

func heroPanel() Node {
	return Section(
		Class("Box hero"),
		H2(Text(heroText)),
	)
}
