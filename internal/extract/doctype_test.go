package extract

import (
	"testing"

	"github.com/jthorn/casepack/internal/model"
)

func TestDetectDocType(t *testing.T) {
	tests := []struct {
		filename string
		want     model.DocType
	}{
		{"RFA_Set_One.txt", model.DocTypeRFA},
		{"requests_for_admission.txt", model.DocTypeRFA},
		{"Form_Rogs.txt", model.DocTypeFROG},
		{"form interrogatories set 2.txt", model.DocTypeFROG},
		{"SROG_set1.txt", model.DocTypeSROG},
		{"special_interrogatories.txt", model.DocTypeSROG},
		{"RPD.txt", model.DocTypeRPD},
		{"rfp_set_three.txt", model.DocTypeRPD},
		{"request_for_production.txt", model.DocTypeRPD},
		{"mystery_document.txt", model.DocTypeGeneric},
	}

	for _, tt := range tests {
		if got := DetectDocType(tt.filename); got != tt.want {
			t.Errorf("DetectDocType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestDocTypeNoun(t *testing.T) {
	tests := []struct {
		tag  model.DocType
		want string
	}{
		{model.DocTypeRFA, "request"},
		{model.DocTypeFROG, "interrogatory"},
		{model.DocTypeSROG, "interrogatory"},
		{model.DocTypeRPD, "request"},
		{model.DocTypeGeneric, "request"},
	}
	for _, tt := range tests {
		if got := tt.tag.Noun(); got != tt.want {
			t.Errorf("%s.Noun() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}
