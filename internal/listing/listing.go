// Package listing supplies the ordered card sequence shown on the landing page.
package listing

import (
	"context"
	"errors"

	"blockpharm/internal/domain"
)

// ErrNoCards is returned when a source yields an empty card sequence.
var ErrNoCards = errors.New("card source is empty")

// Provider returns the cards to render, in display order.
type Provider interface {
	Cards(ctx context.Context) ([]domain.CardDisplayInput, error)
}

// DefaultCards returns the built-in route cards in display order.
func DefaultCards() []domain.CardDisplayInput {
	return []domain.CardDisplayInput{
		domain.NewCard("LDX <-> DXB", true),
		domain.NewCard("LDN <-> LAX", false),
		domain.NewCard("LDN <-> GHA", false),
		domain.NewCard("LDN <-> IRQ", false),
		domain.NewCard("PKS <-> IRK", false),
		domain.NewCard("PKS <-> SEG", false),
	}
}

// StaticProvider serves DefaultCards.
type StaticProvider struct{}

// NewStaticProvider creates a provider for the built-in cards.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Cards returns a fresh copy of the built-in cards on every call.
func (p *StaticProvider) Cards(_ context.Context) ([]domain.CardDisplayInput, error) {
	return DefaultCards(), nil
}
