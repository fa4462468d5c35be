// Package view derives the display-ready entry list from the store.
package view

import (
	"sort"

	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/manav03panchal/voxnote/internal/storage"
)

// Project returns a fresh, display-ordered slice of entries.
// The input slice and its entries are never modified.
//
// Orderings:
//   - SortNewest: all entries, timestamp descending; timestamp ties are
//     broken by id descending, which matches creation order since ids are
//     increasing.
//   - SortOldest: the exact reverse of SortNewest.
//   - SortFavorites: only favorited entries, in SortNewest order.
func Project(entries []*model.Entry, order model.SortOrder) []*model.Entry {
	out := make([]*model.Entry, 0, len(entries))

	if order == model.SortFavorites {
		for _, e := range entries {
			if e.Favorited {
				out = append(out, e)
			}
		}
	} else {
		out = append(out, entries...)
	}

	newerFirst := func(a, b *model.Entry) bool {
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID > b.ID
	}

	switch order {
	case model.SortOldest:
		sort.Slice(out, func(i, j int) bool { return newerFirst(out[j], out[i]) })
	default:
		// SortNewest, SortFavorites, and anything unrecognized
		sort.Slice(out, func(i, j int) bool { return newerFirst(out[i], out[j]) })
	}

	return out
}

// Projector computes projections over an entry repo, reusing the previous
// result while neither the store revision nor the sort order has changed.
// The memo is an optimization only; Project itself is pure.
type Projector struct {
	repo *storage.EntryRepo

	lastRev   uint64
	lastOrder model.SortOrder
	cached    []*model.Entry
	valid     bool
}

// NewProjector creates a projector over the given repo.
func NewProjector(repo *storage.EntryRepo) *Projector {
	return &Projector{repo: repo}
}

// View returns the current projection for the given sort order.
func (p *Projector) View(order model.SortOrder) ([]*model.Entry, error) {
	rev := p.repo.Revision()
	if p.valid && rev == p.lastRev && order == p.lastOrder {
		return p.cached, nil
	}

	entries, err := p.repo.List()
	if err != nil {
		return nil, err
	}

	p.cached = Project(entries, order)
	p.lastRev = rev
	p.lastOrder = order
	p.valid = true
	return p.cached, nil
}
