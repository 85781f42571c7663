package extract

import (
	"regexp"
	"strings"

	"github.com/jthorn/casepack/internal/model"
)

// docTypeRule pairs a filename pattern with its discovery-type tag.
type docTypeRule struct {
	pattern *regexp.Regexp
	tag     model.DocType
}

// Rules are checked in order against the lowercased filename; first match
// wins. RFA must precede the interrogatory shapes so that e.g.
// "rfa_set_one.txt" does not fall through.
var docTypeRules = []docTypeRule{
	{regexp.MustCompile(`rfa|request.*admission`), model.DocTypeRFA},
	{regexp.MustCompile(`frog|form.*rog|form.*interrog`), model.DocTypeFROG},
	{regexp.MustCompile(`srog|spec.*rog|special.*interrog`), model.DocTypeSROG},
	{regexp.MustCompile(`rpd|rfp|request.*production`), model.DocTypeRPD},
}

// DetectDocType tags the discovery flavor from the input filename, not the
// content. Unmatched names get the generic tag.
func DetectDocType(filename string) model.DocType {
	name := strings.ToLower(filename)
	for _, rule := range docTypeRules {
		if rule.pattern.MatchString(name) {
			return rule.tag
		}
	}
	return model.DocTypeGeneric
}
