package extraction

import "testing"

func TestMatchCategoryEmptyTaxonomy(t *testing.T) {
	d := MatchCategory("Starters", nil)
	if !d.ShouldCreateNew || d.Matched != nil || d.Similarity != 0 {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestMatchCategoryExactAfterNormalization(t *testing.T) {
	existing := []ExistingCategoryRef{
		{ID: "1", Name: "Main Course"},
		{ID: "2", Name: "  STARTERS!  "},
	}

	d := MatchCategory("starters", existing)
	if d.Similarity != 1 || d.ShouldCreateNew {
		t.Fatalf("expected exact match, got %+v", d)
	}
	if d.Matched == nil || d.Matched.ID != "2" {
		t.Fatalf("expected category 2, got %+v", d.Matched)
	}
}

func TestMatchCategoryContainmentClearsThreshold(t *testing.T) {
	existing := []ExistingCategoryRef{
		{ID: "1", Name: "Appetizers & Starters"},
	}

	d := MatchCategory("Starters", existing)
	if d.Similarity < 0.7 {
		t.Fatalf("expected similarity >= 0.7, got %v", d.Similarity)
	}
	if d.ShouldCreateNew {
		t.Fatalf("expected match, got create-new: %+v", d)
	}
	if d.Matched == nil || d.Matched.ID != "1" {
		t.Fatalf("expected category 1, got %+v", d.Matched)
	}
}

func TestMatchCategoryBelowThresholdCreatesNew(t *testing.T) {
	existing := []ExistingCategoryRef{
		{ID: "1", Name: "Drinks"},
		{ID: "2", Name: "Desserts"},
	}

	d := MatchCategory("Wood Fired Pizza", existing)
	if !d.ShouldCreateNew {
		t.Fatalf("expected create-new, got %+v", d)
	}
	if d.Matched != nil {
		t.Fatalf("matched must be nil on create-new, got %+v", d.Matched)
	}
	if d.Similarity >= 0.7 {
		t.Fatalf("similarity too high: %v", d.Similarity)
	}
}

func TestMatchCategoryTokenOverlap(t *testing.T) {
	existing := []ExistingCategoryRef{
		{ID: "1", Name: "Hot Drinks Menu"},
	}

	// "hot drinks" vs "hot drinks menu": 2*2/(2+3) = 0.8.
	d := MatchCategory("Hot Drinks", existing)
	if d.ShouldCreateNew || d.Matched == nil || d.Matched.ID != "1" {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestMatchCategoryGreedyNotStable(t *testing.T) {
	// Two detected names may both land on the same existing category.
	existing := []ExistingCategoryRef{
		{ID: "1", Name: "Starters"},
	}

	a := MatchCategory("Starters", existing)
	b := MatchCategory("Cold Starters", existing)

	if a.Matched == nil || b.Matched == nil {
		t.Fatalf("expected both to match: %+v, %+v", a, b)
	}
	if a.Matched.ID != b.Matched.ID {
		t.Fatalf("expected same target, got %s and %s", a.Matched.ID, b.Matched.ID)
	}
}
