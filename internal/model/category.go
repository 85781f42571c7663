package model

// Category is one canonical objection ground from the closed taxonomy.
// The taxonomy is versioned together with the approved-template catalog;
// template reference numbers below match the numbered entries in that catalog.
type Category string

const (
	CategoryRelevance       Category = "Relevance"
	CategoryCompound        Category = "Compound"
	CategoryVague           Category = "Vague"
	CategorySpeculation     Category = "Speculation"
	CategoryAssumesFacts    Category = "Assumes Facts"
	CategoryExpertOpinion   Category = "Expert Opinion"
	CategoryLegalConclusion Category = "Legal Conclusion"
	CategoryOverbroad       Category = "Overbroad"
	CategoryDuplicative     Category = "Duplicative"
	CategoryESIBurden       Category = "ESI-Burden"
	CategoryOppressive      Category = "Oppressive"
	CategoryNotComplete     Category = "Not-Complete"
	CategoryAnnoyance       Category = "Annoyance"
	CategoryEquallyAvail    Category = "Equally-Avail"
	CategoryPublicDomain    Category = "Public-Domain"
	CategoryAttyClient      Category = "Atty-Client"
	CategoryWorkProduct     Category = "Work-Product"
	CategoryPrivacyRP       Category = "Privacy-RP"
	CategoryPrivacyThird    Category = "Privacy-3rd"
	CategoryJointDefense    Category = "Joint-Defense"
	CategoryAnticipation    Category = "Anticipation"
	CategoryPremature       Category = "Premature"
	CategorySettlementPriv  Category = "Settlement-Priv"
	CategoryDefOverbroad    Category = "Def-Overbroad"
)

// templateRefs maps each canonical category to its numbered entry in the
// approved objection-template catalog (objection_language.txt).
var templateRefs = map[Category]string{
	CategoryRelevance:       "1",
	CategoryCompound:        "2",
	CategoryVague:           "3",
	CategorySpeculation:     "4",
	CategoryAssumesFacts:    "5",
	CategoryExpertOpinion:   "6",
	CategoryLegalConclusion: "7",
	CategoryOverbroad:       "8",
	CategoryDuplicative:     "9",
	CategoryESIBurden:       "10",
	CategoryOppressive:      "11",
	CategoryNotComplete:     "12",
	CategoryAnnoyance:       "13",
	CategoryEquallyAvail:    "14",
	CategoryPublicDomain:    "15",
	CategoryAttyClient:      "16",
	CategoryWorkProduct:     "17",
	CategoryPrivacyRP:       "18",
	CategoryPrivacyThird:    "19",
	CategoryJointDefense:    "20",
	CategoryAnticipation:    "21",
	CategoryPremature:       "22",
	CategorySettlementPriv:  "23",
	CategoryDefOverbroad:    "24",
}

// TemplateRef returns the template catalog number for the category, or ""
// for a category outside the closed taxonomy. Categories with no catalog
// entry render as custom grounds rather than failing.
func (c Category) TemplateRef() string {
	return templateRefs[c]
}

// Known reports whether the category belongs to the closed taxonomy.
func (c Category) Known() bool {
	_, ok := templateRefs[c]
	return ok
}
