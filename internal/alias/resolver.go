// Package alias maps free-text matrix column headers to the closed category
// taxonomy and to the structural column roles (identifier, annotation).
// Headers are user-authored with no schema enforcement, so lookup is
// case/whitespace-insensitive and an unrecognized header is never an error:
// it becomes a custom category carrying its original text as its label.
package alias

import (
	"strings"

	"github.com/jthorn/casepack/internal/model"
)

// Kind classifies what a header resolved to.
type Kind int

const (
	KindIdentifier Kind = iota // the item-identifier column
	KindAnnotation             // the row-level notes column
	KindCategory               // a canonical category column
	KindCustom                 // an unrecognized header, kept as its own label
)

// Resolution is the outcome of resolving one header.
type Resolution struct {
	Kind     Kind
	Category model.Category // set for KindCategory and KindCustom
}

// Table is the immutable alias configuration a Resolver is built from.
type Table struct {
	// Categories maps each canonical category to its accepted spellings.
	Categories map[model.Category][]string

	// Identifier and Annotation list accepted spellings for the two
	// structural column roles.
	Identifier []string
	Annotation []string
}

// DefaultTable returns the built-in alias table. The spellings cover the
// column names observed in real selection matrices; lookup is many-to-one.
func DefaultTable() Table {
	return Table{
		Categories: map[model.Category][]string{
			model.CategoryRelevance:       {"relevance", "relevant", "irrelevant"},
			model.CategoryCompound:        {"compound"},
			model.CategoryVague:           {"vague", "vague & ambiguous", "vague and ambiguous", "vague/ambiguous", "ambiguous", "vague, ambiguous", "vague ambiguous"},
			model.CategorySpeculation:     {"speculation", "speculative", "calls for speculation"},
			model.CategoryAssumesFacts:    {"assumes facts", "assumes", "assumption", "assumes facts not in evidence"},
			model.CategoryExpertOpinion:   {"expert opinion", "expert", "calls for expert"},
			model.CategoryLegalConclusion: {"legal conclusion", "legal", "conclusion", "seeks legal conclusion"},
			model.CategoryOverbroad:       {"overbroad", "overbroad and unduly burdensome", "overbroad-scope", "overbroad (scope)", "scope"},
			model.CategoryDuplicative:     {"duplicative", "duplicate", "duplicative and harassing"},
			model.CategoryESIBurden:       {"esi burden", "esi-burden", "esi", "undue burden (esi)"},
			model.CategoryOppressive:      {"oppressive", "oppressive and harassing", "burdensome", "oppressive/burdensome"},
			model.CategoryNotComplete:     {"not full/complete", "not full and complete", "not-complete", "not complete", "not full"},
			model.CategoryAnnoyance:       {"annoyance", "unwarranted annoyance", "embarrassment"},
			model.CategoryEquallyAvail:    {"equally available", "equally avail", "equally-avail"},
			model.CategoryPublicDomain:    {"public domain", "public-domain", "public domain / access"},
			model.CategoryAttyClient:      {"attorney-client", "atty-client", "attorney client", "ac privilege", "a-c"},
			model.CategoryWorkProduct:     {"work product", "work-product", "attorney work product", "wp"},
			model.CategoryPrivacyRP:       {"privacy (rp)", "privacy-rp", "privacy rp", "privacy (responding party)", "privacy"},
			model.CategoryPrivacyThird:    {"privacy (3rd)", "privacy-3rd", "privacy 3rd", "privacy (third parties)", "third party privacy"},
			model.CategoryJointDefense:    {"joint defense", "joint-defense", "joint defense privilege"},
			model.CategoryAnticipation:    {"anticipation", "anticipation of litigation"},
			model.CategoryPremature:       {"premature", "premature discovery", "premature expert"},
			model.CategorySettlementPriv:  {"settlement priv", "settlement", "settlement privilege"},
			model.CategoryDefOverbroad:    {"def-overbroad", "definition overbroad"},
		},
		Identifier: []string{"request", "req", "no", "no.", "number", "request no", "request no.", "interrogatory", "rog", "rfa", "rpd"},
		Annotation: []string{"notes", "comments", "note", "comment", "remarks"},
	}
}

// WithAliases returns a copy of the table extended with user-configured
// category spellings. Canonical names match case-insensitively (config
// loaders tend to lowercase map keys); unknown names introduce new spellings
// mapped to a custom category of that name.
func (t Table) WithAliases(extra map[string][]string) Table {
	if len(extra) == 0 {
		return t
	}
	merged := make(map[model.Category][]string, len(t.Categories)+len(extra))
	for cat, spellings := range t.Categories {
		merged[cat] = append([]string(nil), spellings...)
	}
	for name, spellings := range extra {
		cat := model.Category(name)
		for existing := range merged {
			if strings.EqualFold(string(existing), name) {
				cat = existing
				break
			}
		}
		merged[cat] = append(merged[cat], spellings...)
	}
	t.Categories = merged
	return t
}

// Resolver answers header lookups against one immutable table. Independent
// resolver instances share nothing, so callers may build one per request.
type Resolver struct {
	byAlias    map[string]model.Category
	identifier map[string]struct{}
	annotation map[string]struct{}
}

// NewResolver builds a resolver from the given table.
func NewResolver(t Table) *Resolver {
	r := &Resolver{
		byAlias:    make(map[string]model.Category),
		identifier: make(map[string]struct{}, len(t.Identifier)),
		annotation: make(map[string]struct{}, len(t.Annotation)),
	}
	for cat, spellings := range t.Categories {
		for _, s := range spellings {
			r.byAlias[normalize(s)] = cat
		}
	}
	for _, s := range t.Identifier {
		r.identifier[normalize(s)] = struct{}{}
	}
	for _, s := range t.Annotation {
		r.annotation[normalize(s)] = struct{}{}
	}
	return r
}

// Resolve classifies a header. Precedence: identifier role, then annotation
// role, then category alias; first match wins. Anything else is a custom
// category keeping the original header text (trimmed) as its label.
func (r *Resolver) Resolve(header string) Resolution {
	key := normalize(header)
	if _, ok := r.identifier[key]; ok {
		return Resolution{Kind: KindIdentifier}
	}
	if _, ok := r.annotation[key]; ok {
		return Resolution{Kind: KindAnnotation}
	}
	if cat, ok := r.byAlias[key]; ok {
		return Resolution{Kind: KindCategory, Category: cat}
	}
	return Resolution{Kind: KindCustom, Category: model.Category(strings.TrimSpace(header))}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
