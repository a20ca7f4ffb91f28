// Package catalog turns a product list and a shopper's Selection into a
// deterministic page of results: filter, then sort, then paginate.
package catalog

import (
	"slices"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/google/uuid"
)

// SelectionState is the cascading category → subcategory state machine of a
// browsing session. At most one selected category is active, and only the
// active category's subcategories can be selected.
//
// A SelectionState belongs to a single session and is not safe for
// concurrent use.
type SelectionState struct {
	categories map[uuid.UUID]models.Category
	sel        models.Selection
}

// NewSelectionState returns an empty selection over the given categories.
func NewSelectionState(categories []models.Category) *SelectionState {
	lookup := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}
	return &SelectionState{
		categories: lookup,
		sel:        emptySelection(),
	}
}

func emptySelection() models.Selection {
	return models.Selection{SortKey: models.SortNameAsc, Page: 1}
}

// Snapshot returns a copy of the current selection, safe to hand to the
// filter pipeline while the state keeps changing.
func (s *SelectionState) Snapshot() models.Selection {
	return s.sel.Clone()
}

// ToggleCategory selects or deselects a category.
//
// Selecting makes it the active category and clears every selected
// subcategory. Deselecting the active category clears the active category
// and drops its subcategories.
func (s *SelectionState) ToggleCategory(id uuid.UUID) {
	s.sel.Page = 1

	if i := slices.Index(s.sel.SelectedCategoryIDs, id); i >= 0 {
		s.sel.SelectedCategoryIDs = slices.Delete(s.sel.SelectedCategoryIDs, i, i+1)
		if s.sel.ActiveCategoryID != nil && *s.sel.ActiveCategoryID == id {
			s.sel.ActiveCategoryID = nil
			owned := s.categories[id].Subcategories
			s.sel.SelectedSubcategories = slices.DeleteFunc(s.sel.SelectedSubcategories, owned.Contains)
		}
		return
	}

	s.sel.SelectedCategoryIDs = append(s.sel.SelectedCategoryIDs, id)
	active := id
	s.sel.ActiveCategoryID = &active
	s.sel.SelectedSubcategories = nil
}

// ToggleSubcategory flips label in the selected subcategories. Labels that
// are not visible under the active category are ignored and false is
// returned.
func (s *SelectionState) ToggleSubcategory(label string) bool {
	if !slices.Contains(s.VisibleSubcategories(), label) {
		return false
	}
	s.sel.Page = 1

	if i := slices.Index(s.sel.SelectedSubcategories, label); i >= 0 {
		s.sel.SelectedSubcategories = slices.Delete(s.sel.SelectedSubcategories, i, i+1)
		return true
	}
	s.sel.SelectedSubcategories = append(s.sel.SelectedSubcategories, label)
	return true
}

// SetCategoryFromExternalNavigation narrows the selection to exactly one
// category, as when arriving through a direct category link.
func (s *SelectionState) SetCategoryFromExternalNavigation(id uuid.UUID) {
	active := id
	s.sel.SelectedCategoryIDs = []uuid.UUID{id}
	s.sel.ActiveCategoryID = &active
	s.sel.SelectedSubcategories = nil
	s.sel.Page = 1
}

// ClearAll resets every filter and the page. The sort order is kept.
func (s *SelectionState) ClearAll() {
	sortKey := s.sel.SortKey
	s.sel = emptySelection()
	if sortKey != "" {
		s.sel.SortKey = sortKey
	}
}

func (s *SelectionState) SetSearchQuery(q string) {
	s.sel.SearchQuery = q
	s.sel.Page = 1
}

// SetPriceRange sets the inclusive price bound; nil removes it.
func (s *SelectionState) SetPriceRange(r *models.PriceRange) {
	if r != nil {
		copied := *r
		r = &copied
	}
	s.sel.PriceRange = r
	s.sel.Page = 1
}

func (s *SelectionState) SetServiceFlags(flags models.ServiceFlags) {
	s.sel.ServiceFlags = flags
	s.sel.Page = 1
}

// SetSortKey stores key as given; unknown keys are reported by the sorter.
func (s *SelectionState) SetSortKey(key models.SortKey) {
	s.sel.SortKey = key
	s.sel.Page = 1
}

// SetPage moves to another page without touching any filter.
func (s *SelectionState) SetPage(page int) {
	s.sel.Page = page
}

// VisibleSubcategories returns the active category's subcategory labels, or
// nil when no category is active.
func (s *SelectionState) VisibleSubcategories() []string {
	if s.sel.ActiveCategoryID == nil {
		return nil
	}
	return s.categories[*s.sel.ActiveCategoryID].Subcategories
}

func (s *SelectionState) IsCategorySelected(id uuid.UUID) bool {
	return slices.Contains(s.sel.SelectedCategoryIDs, id)
}
