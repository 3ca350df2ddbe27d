package filter

import (
	"testing"
	"time"

	"github.com/adore/backend/internal/model"
)

func testData() ([]*model.Feedback, NameIndex) {
	projects := []*model.Project{
		{ID: "p1", Name: "Website Redesign"},
		{ID: "p2", Name: "Mobile App"},
	}
	clients := []*model.Client{
		{ID: "c1", Name: "Acme Corporation"},
		{ID: "c2", Name: "TechFlow Solutions"},
	}
	items := []*model.Feedback{
		{ID: "f1", ProjectID: "p1", ClientID: "c1", Rating: 5, Comments: "Outstanding delivery", Tags: "quality,support", Reviewed: true, CreatedAt: time.Now()},
		{ID: "f2", ProjectID: "p1", ClientID: "c2", Rating: 3, Comments: "Decent value overall", Tags: "value", CreatedAt: time.Now()},
		{ID: "f3", ProjectID: "p2", ClientID: "c1", Rating: 4, Comments: "Great communication", Tags: "quality", CreatedAt: time.Now()},
	}
	return items, BuildNameIndex(projects, clients)
}

func ids(items []*model.Feedback) []string {
	out := make([]string, len(items))
	for i, f := range items {
		out[i] = f.ID
	}
	return out
}

// TestApply_NoCriteria verifies that an empty criteria set returns the input
// collection itself, same elements in the same order.
func TestApply_NoCriteria(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{}, names)
	if len(got) != len(items) {
		t.Fatalf("expected %d records, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("record %d: expected identical element, got %v", i, got[i])
		}
	}
}

// TestApply_SentinelAll verifies that "all" behaves the same as empty.
func TestApply_SentinelAll(t *testing.T) {
	items, names := testData()
	c := Criteria{ProjectID: All, ClientID: All, Rating: All, Tag: All, ReviewStatus: All}
	got := Apply(items, c, names)
	if len(got) != len(items) {
		t.Errorf("sentinel criteria filtered records: got %v", ids(got))
	}
}

func TestApply_ProjectFilter(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{ProjectID: "p1"}, names)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f2" {
		t.Errorf("project filter: got %v, want [f1 f2]", ids(got))
	}
}

func TestApply_ClientFilter(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{ClientID: "c1"}, names)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f3" {
		t.Errorf("client filter: got %v, want [f1 f3]", ids(got))
	}
}

func TestApply_RatingFilter(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{Rating: "5"}, names)
	if len(got) != 1 || got[0].ID != "f1" {
		t.Errorf("rating filter: got %v, want [f1]", ids(got))
	}
}

// TestApply_RatingUnparseable verifies a malformed rating criterion matches
// nothing rather than everything.
func TestApply_RatingUnparseable(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{Rating: "five"}, names)
	if len(got) != 0 {
		t.Errorf("unparseable rating: got %v, want empty", ids(got))
	}
}

func TestApply_TagFilter(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{Tag: "quality"}, names)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f3" {
		t.Errorf("tag filter: got %v, want [f1 f3]", ids(got))
	}
}

func TestApply_ReviewStatusFilter(t *testing.T) {
	items, names := testData()

	reviewed := Apply(items, Criteria{ReviewStatus: "reviewed"}, names)
	if len(reviewed) != 1 || reviewed[0].ID != "f1" {
		t.Errorf("reviewed filter: got %v, want [f1]", ids(reviewed))
	}

	unreviewed := Apply(items, Criteria{ReviewStatus: "unreviewed"}, names)
	if len(unreviewed) != 2 || unreviewed[0].ID != "f2" || unreviewed[1].ID != "f3" {
		t.Errorf("unreviewed filter: got %v, want [f2 f3]", ids(unreviewed))
	}
}

// TestApply_Search matches against comments, project name, and client name,
// case-insensitively.
func TestApply_Search(t *testing.T) {
	items, names := testData()

	// Comment text.
	got := Apply(items, Criteria{SearchTerm: "COMMUNICATION"}, names)
	if len(got) != 1 || got[0].ID != "f3" {
		t.Errorf("comment search: got %v, want [f3]", ids(got))
	}

	// Project name.
	got = Apply(items, Criteria{SearchTerm: "redesign"}, names)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f2" {
		t.Errorf("project-name search: got %v, want [f1 f2]", ids(got))
	}

	// Client name.
	got = Apply(items, Criteria{SearchTerm: "acme"}, names)
	if len(got) != 2 || got[0].ID != "f1" || got[1].ID != "f3" {
		t.Errorf("client-name search: got %v, want [f1 f3]", ids(got))
	}
}

// TestApply_SearchUnknownReference verifies records pointing at entities that
// no longer resolve are still searchable by comment but not by placeholder.
func TestApply_SearchUnknownReference(t *testing.T) {
	_, names := testData()
	items := []*model.Feedback{
		{ID: "fx", ProjectID: "gone", ClientID: "gone", Comments: "orphaned record"},
	}
	if got := Apply(items, Criteria{SearchTerm: "orphaned"}, names); len(got) != 1 {
		t.Errorf("expected comment match for orphaned record, got %v", ids(got))
	}
	if got := Apply(items, Criteria{SearchTerm: "unknown"}, names); len(got) != 0 {
		t.Errorf("placeholder names must not be searchable, got %v", ids(got))
	}
}

// TestApply_CriteriaCompose verifies AND composition and that the combined
// result is independent of predicate order.
func TestApply_CriteriaCompose(t *testing.T) {
	items, names := testData()

	combined := Apply(items, Criteria{Rating: "5", Tag: "quality"}, names)
	if len(combined) != 1 || combined[0].ID != "f1" {
		t.Fatalf("combined filter: got %v, want [f1]", ids(combined))
	}

	// Sequential application in either order yields the same set.
	byRatingFirst := Apply(Apply(items, Criteria{Rating: "5"}, names), Criteria{Tag: "quality"}, names)
	byTagFirst := Apply(Apply(items, Criteria{Tag: "quality"}, names), Criteria{Rating: "5"}, names)
	if len(byRatingFirst) != 1 || len(byTagFirst) != 1 || byRatingFirst[0] != byTagFirst[0] {
		t.Errorf("order dependence: rating-first %v, tag-first %v", ids(byRatingFirst), ids(byTagFirst))
	}
}

// TestApply_PreservesOrder verifies the pipeline never re-sorts.
func TestApply_PreservesOrder(t *testing.T) {
	items, names := testData()
	got := Apply(items, Criteria{ClientID: "c1"}, names)
	if got[0].ID != "f1" || got[1].ID != "f3" {
		t.Errorf("input order not preserved: %v", ids(got))
	}
}

// TestApply_ReviewToggleMembership verifies that toggling a record's reviewed
// flag moves it in and out of the reviewed subset, and a double toggle
// restores the original membership.
func TestApply_ReviewToggleMembership(t *testing.T) {
	items, names := testData()
	c := Criteria{ReviewStatus: "reviewed"}

	inSet := func(id string) bool {
		for _, f := range Apply(items, c, names) {
			if f.ID == id {
				return true
			}
		}
		return false
	}

	if inSet("f2") {
		t.Fatal("f2 starts unreviewed")
	}
	items[1].Reviewed = true
	if !inSet("f2") {
		t.Error("f2 should be in the reviewed subset after toggle")
	}
	items[1].Reviewed = false
	if inSet("f2") {
		t.Error("f2 should leave the reviewed subset after toggling back")
	}
}

func TestCriteria_Active(t *testing.T) {
	if (Criteria{}).Active() {
		t.Error("zero criteria must be inactive")
	}
	if (Criteria{ProjectID: All, Rating: All}).Active() {
		t.Error("sentinel-only criteria must be inactive")
	}
	if !(Criteria{SearchTerm: "x"}).Active() {
		t.Error("search term activates criteria")
	}
	if !(Criteria{ReviewStatus: "reviewed"}).Active() {
		t.Error("review status activates criteria")
	}
}

func TestNameIndex_Placeholders(t *testing.T) {
	_, names := testData()
	if got := names.ProjectName("p1"); got != "Website Redesign" {
		t.Errorf("ProjectName(p1) = %q", got)
	}
	if got := names.ProjectName("nope"); got != "Unknown Project" {
		t.Errorf("ProjectName(nope) = %q", got)
	}
	if got := names.ClientName("nope"); got != "Unknown Client" {
		t.Errorf("ClientName(nope) = %q", got)
	}
}
