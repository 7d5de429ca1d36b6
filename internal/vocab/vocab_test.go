package vocab

import (
	"sort"
	"strings"
	"testing"
)

func TestDefaultLoads(t *testing.T) {
	v := Default()
	if len(v.TechnicalSkills()) == 0 {
		t.Fatal("expected technical skills in default vocabulary")
	}
	if len(v.SoftSkills()) == 0 {
		t.Fatal("expected soft skills in default vocabulary")
	}
	if len(v.SectionHeadings("experience")) == 0 {
		t.Fatal("expected experience headings in default vocabulary")
	}
}

func TestCanonicalResolvesSynonyms(t *testing.T) {
	v := Default()
	cases := []struct {
		in   string
		want string
	}{
		{"JS", "javascript"},
		{"Golang", "go"},
		{"k8s", "kubernetes"},
		{"Postgres", "postgresql"},
		{"Python", "python"},
		{"  React.JS ", "react"},
	}
	for _, tc := range cases {
		if got := v.Canonical(tc.in); got != tc.want {
			t.Errorf("Canonical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassification(t *testing.T) {
	v := Default()
	if !v.IsTechnical("Kubernetes") {
		t.Error("expected kubernetes to be technical")
	}
	if !v.IsTechnical("k8s") {
		t.Error("expected k8s to resolve to a technical skill")
	}
	if !v.IsSoft("Leadership") {
		t.Error("expected leadership to be soft")
	}
	if v.IsSoft("terraform") {
		t.Error("terraform must not be a soft skill")
	}
	if !v.IsLanguage("Spanish") {
		t.Error("expected spanish to be a language")
	}
}

func TestDegreeLevel(t *testing.T) {
	v := Default()
	cases := []struct {
		line string
		want EducationLevel
	}{
		{"Bachelor of Science in Computer Science", LevelBachelor},
		{"B.S. Computer Science", LevelBachelor},
		{"Master of Business Administration", LevelMaster},
		{"MBA, Finance", LevelMaster},
		{"Ph.D. in Physics", LevelDoctorate},
		{"Associate Degree in Nursing", LevelAssociate},
		{"Professional background in sales", LevelNone},
	}
	for _, tc := range cases {
		if got := v.DegreeLevel(tc.line); got != tc.want {
			t.Errorf("DegreeLevel(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestDegreeLevelAvoidsSubstrings(t *testing.T) {
	v := Default()
	// "ba" inside "background" must not count as a bachelor token.
	if got := v.DegreeLevel("strong background in retail"); got != LevelNone {
		t.Fatalf("DegreeLevel = %v, want none", got)
	}
}

func TestLoadRejectsEmptyVocab(t *testing.T) {
	_, err := Load(strings.NewReader("technical_skills: {}\nsoft_skills: []\n"))
	if err == nil {
		t.Fatal("expected error for empty vocabulary")
	}
}

func TestTermIndex(t *testing.T) {
	cases := []struct {
		text, term string
		want       int
	}{
		{"Expert in Java and Go", "java", 10},
		{"JavaScript developer", "java", -1},
		{"golang, docker", "go", -1},
		{"Go, Docker", "go", 0},
		{"worked with k8s clusters", "k8s", 12},
		{"", "go", -1},
		{"anything", "", -1},
	}
	for _, tc := range cases {
		if got := TermIndex(tc.text, tc.term); got != tc.want {
			t.Errorf("TermIndex(%q, %q) = %d, want %d", tc.text, tc.term, got, tc.want)
		}
	}
}

func TestScanTermsIncludeAliases(t *testing.T) {
	v := Default()
	terms := v.TechnicalScanTerms()
	if !sort.StringsAreSorted(terms) {
		t.Fatal("technical scan terms are not sorted")
	}
	has := func(want string) bool {
		for _, term := range terms {
			if term == want {
				return true
			}
		}
		return false
	}
	for _, want := range []string{"golang", "go", "k8s", "kubernetes"} {
		if !has(want) {
			t.Errorf("scan terms missing %q", want)
		}
	}
}
