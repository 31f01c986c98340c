package ui

import (
	"blockpharm/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// cardBodyText is shared by every card regardless of its input.
const cardBodyText = "Some quick example text to build on the card title and make up the bulk of the card's content."

const cardActionLabel = "Get Quote"

// DisplayCard renders one route card: label and status badge in the header,
// fixed body text, and a single action button. Absent fields render as an
// empty title and a "Closed" badge.
func DisplayCard(c domain.CardDisplayInput) Node {
	status := c.Status()
	return Div(
		Class("Box card route-card"),
		Data("status", statusKey(status)),
		Div(
			Class("card-header"),
			Div(Class("col-6 text-left"), Strong(Class("card-title"), Text(c.Title()))),
			Div(Class("col-6 text-right"), statusBadge(status)),
		),
		Hr(Class("card-divider")),
		Div(Class("card-body"), P(Text(cardBodyText))),
		Hr(Class("card-divider")),
		Div(
			Class("card-footer"),
			Button(Type("button"), Class("btn btn-sm"), Text(cardActionLabel)),
		),
	)
}

func statusBadge(s domain.CardStatus) Node {
	return Span(Class("Label Label--"+s.Tone()), Text(s.Label()))
}

func statusKey(s domain.CardStatus) string {
	if s == domain.StatusOpen {
		return "open"
	}
	return "closed"
}
