package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sharkfolio/sharkgen/internal/model"
)

// Service provides lookups over a validated roster.
type Service struct {
	investors []model.Investor
	bySlug    map[string]int
}

// NewService validates r and indexes it. Slugs, panel columns and guest keys
// must each be unique, every investor needs a slug and a name, and no
// investor may be both a panel member and a guest.
func NewService(r model.Roster) (*Service, error) {
	if len(r.Investors) == 0 {
		return nil, errors.New("roster is empty")
	}

	bySlug := make(map[string]int, len(r.Investors))
	columns := make(map[string]string)
	guests := make(map[string]string)
	for i, inv := range r.Investors {
		if inv.Slug == "" {
			return nil, fmt.Errorf("investor %d: missing slug", i+1)
		}
		if inv.Name == "" {
			return nil, fmt.Errorf("investor %s: missing name", inv.Slug)
		}
		if inv.IsPanel() && inv.IsGuest() {
			return nil, fmt.Errorf("investor %s: column and guest key are exclusive", inv.Slug)
		}
		if _, dup := bySlug[inv.Slug]; dup {
			return nil, fmt.Errorf("duplicate investor slug %q", inv.Slug)
		}
		bySlug[inv.Slug] = i

		if inv.IsPanel() {
			if other, dup := columns[inv.Column]; dup {
				return nil, fmt.Errorf("column %q used by both %s and %s", inv.Column, other, inv.Slug)
			}
			columns[inv.Column] = inv.Slug
		}
		if inv.IsGuest() {
			if other, dup := guests[inv.GuestKey]; dup {
				return nil, fmt.Errorf("guest key %q used by both %s and %s", inv.GuestKey, other, inv.Slug)
			}
			guests[inv.GuestKey] = inv.Slug
		}
	}

	investors := make([]model.Investor, len(r.Investors))
	copy(investors, r.Investors)
	return &Service{investors: investors, bySlug: bySlug}, nil
}

// All returns every investor in profile order.
func (s *Service) All() []model.Investor {
	return s.investors
}

// Index returns the profile position of slug, or -1.
func (s *Service) Index(slug string) int {
	i, ok := s.bySlug[slug]
	if !ok {
		return -1
	}
	return i
}

// Panel returns the investors read from dedicated columns, in profile order.
func (s *Service) Panel() []model.Investor {
	var result []model.Investor
	for _, inv := range s.investors {
		if inv.IsPanel() {
			result = append(result, inv)
		}
	}
	return result
}

// MatchGuests returns every guest whose key occurs anywhere in name, in
// profile order. Matching is by substring, so "Ashneer Grover" and
// "Ashneer, Kunal" both match the "Ashneer" key.
func (s *Service) MatchGuests(name string) []model.Investor {
	if name == "" {
		return nil
	}
	var result []model.Investor
	for _, inv := range s.investors {
		if inv.IsGuest() && strings.Contains(name, inv.GuestKey) {
			result = append(result, inv)
		}
	}
	return result
}
