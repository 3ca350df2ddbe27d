// Package filter narrows a feedback collection to the subset matching the
// admin dashboard's filter criteria. All active criteria compose with logical
// AND; the input order is preserved and never re-sorted.
package filter

import (
	"strconv"
	"strings"

	"github.com/adore/backend/internal/model"
	"github.com/adore/backend/internal/tags"
)

// sentinel values meaning "no constraint" for the select-style criteria.
const All = "all"

// Criteria holds the dashboard's filter state. The zero value matches
// everything, so resetting filters is a single assignment of Criteria{}.
type Criteria struct {
	// ProjectID and ClientID match exactly; "" or "all" means unconstrained.
	ProjectID string
	ClientID  string
	// Rating matches the exact star value; "" or "all" means unconstrained.
	// Carried as a string to preserve the select-sentinel convention; a value
	// that does not parse as an integer matches nothing.
	Rating string
	// Tag passes records whose decoded tag list contains the id.
	Tag string
	// ReviewStatus is "reviewed", "unreviewed", or unconstrained otherwise.
	ReviewStatus string
	// SearchTerm is a case-insensitive substring matched against the comment
	// text, the referenced project's name, or the referenced client's name.
	SearchTerm string
}

// Active reports whether any criterion constrains the result.
func (c Criteria) Active() bool {
	return constrained(c.ProjectID) || constrained(c.ClientID) || constrained(c.Rating) ||
		constrained(c.Tag) || c.ReviewStatus == "reviewed" || c.ReviewStatus == "unreviewed" ||
		c.SearchTerm != ""
}

func constrained(v string) bool {
	return v != "" && v != All
}

// NameIndex resolves project and client ids to display names for the search
// criterion. Built once per fetch cycle instead of scanning the entity lists
// on every record.
type NameIndex struct {
	projects map[string]string
	clients  map[string]string
}

// BuildNameIndex precomputes id→name lookups from the fetched entity lists.
func BuildNameIndex(projects []*model.Project, clients []*model.Client) NameIndex {
	idx := NameIndex{
		projects: make(map[string]string, len(projects)),
		clients:  make(map[string]string, len(clients)),
	}
	for _, p := range projects {
		idx.projects[p.ID] = p.Name
	}
	for _, c := range clients {
		idx.clients[c.ID] = c.Name
	}
	return idx
}

// ProjectName returns the display name for a project id, or a placeholder
// when the id is unknown.
func (n NameIndex) ProjectName(id string) string {
	if name, ok := n.projects[id]; ok {
		return name
	}
	return "Unknown Project"
}

// ClientName returns the display name for a client id, or a placeholder when
// the id is unknown.
func (n NameIndex) ClientName(id string) string {
	if name, ok := n.clients[id]; ok {
		return name
	}
	return "Unknown Client"
}

// Apply returns the records matching all active criteria, in input order.
// With no active criteria the input is returned unchanged. Cheap exact-match
// predicates run before the substring search.
func Apply(items []*model.Feedback, c Criteria, names NameIndex) []*model.Feedback {
	if !c.Active() {
		return items
	}

	rating, ratingSet := 0, false
	if constrained(c.Rating) {
		n, err := strconv.Atoi(c.Rating)
		if err != nil {
			// Unparseable rating criterion matches nothing.
			return []*model.Feedback{}
		}
		rating, ratingSet = n, true
	}

	term := strings.ToLower(c.SearchTerm)

	result := make([]*model.Feedback, 0, len(items))
	for _, f := range items {
		if constrained(c.ProjectID) && f.ProjectID != c.ProjectID {
			continue
		}
		if constrained(c.ClientID) && f.ClientID != c.ClientID {
			continue
		}
		if ratingSet && f.Rating != rating {
			continue
		}
		if constrained(c.Tag) && !tags.Contains(f.Tags, c.Tag) {
			continue
		}
		if c.ReviewStatus == "reviewed" && !f.Reviewed {
			continue
		}
		if c.ReviewStatus == "unreviewed" && f.Reviewed {
			continue
		}
		if term != "" && !matchesSearch(f, term, names) {
			continue
		}
		result = append(result, f)
	}
	return result
}

// matchesSearch reports whether the term appears in the comment text or in
// the referenced project or client name. Unresolvable references contribute
// nothing to the search, so display placeholders are not matchable.
func matchesSearch(f *model.Feedback, term string, names NameIndex) bool {
	if strings.Contains(strings.ToLower(f.Comments), term) {
		return true
	}
	if strings.Contains(strings.ToLower(names.projects[f.ProjectID]), term) {
		return true
	}
	return strings.Contains(strings.ToLower(names.clients[f.ClientID]), term)
}
