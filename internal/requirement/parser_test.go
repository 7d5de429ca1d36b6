package requirement

import (
	"errors"
	"testing"

	"screening-backend/internal/vocab"
)

const sampleRequirements = `We are looking for a backend engineer with 3+ years
of experience building services in Go and PostgreSQL.
Experience with Docker and Kubernetes is required.
Bachelor's degree in Computer Science or related field.
Strong communication and problem solving skills.
Knowledge of Terraform would be a plus, and AWS exposure is nice to have.
`

func TestParseSampleRequirements(t *testing.T) {
	rec, err := Parse("Backend Engineer", sampleRequirements, vocab.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if rec.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q", rec.JobTitle)
	}
	if rec.MinExperienceYears == nil || *rec.MinExperienceYears != 3 {
		t.Errorf("MinExperienceYears = %v, want 3", rec.MinExperienceYears)
	}
	if rec.EducationLevel != vocab.LevelBachelor {
		t.Errorf("EducationLevel = %v, want bachelor", rec.EducationLevel)
	}

	wantRequired := []string{"docker", "go", "kubernetes", "postgresql"}
	if !equalStrings(rec.RequiredSkills, wantRequired) {
		t.Errorf("RequiredSkills = %v, want %v", rec.RequiredSkills, wantRequired)
	}
	wantPreferred := []string{"aws", "terraform"}
	if !equalStrings(rec.PreferredSkills, wantPreferred) {
		t.Errorf("PreferredSkills = %v, want %v", rec.PreferredSkills, wantPreferred)
	}
	wantSoft := []string{"communication", "problem solving"}
	if !equalStrings(rec.SoftSkills, wantSoft) {
		t.Errorf("SoftSkills = %v, want %v", rec.SoftSkills, wantSoft)
	}
}

func TestParseEmptyRequirements(t *testing.T) {
	for _, text := range []string{"", "   \n\t"} {
		if _, err := Parse("Engineer", text, vocab.Default()); !errors.Is(err, ErrEmptyRequirements) {
			t.Errorf("Parse(%q) err = %v, want ErrEmptyRequirements", text, err)
		}
	}
}

func TestMinExperience(t *testing.T) {
	cases := []struct {
		text string
		want int // -1 means nil
	}{
		{"minimum 5 years of experience", 5},
		{"2-4 years in a similar role", 2},
		{"at least 7 years leading teams", 7},
		{"3+ years with Python, 5+ years total", 5},
		{"no specific requirements", -1},
	}
	for _, tc := range cases {
		got := minExperience(tc.text)
		switch {
		case tc.want < 0 && got != nil:
			t.Errorf("minExperience(%q) = %d, want nil", tc.text, *got)
		case tc.want >= 0 && (got == nil || *got != tc.want):
			t.Errorf("minExperience(%q) = %v, want %d", tc.text, got, tc.want)
		}
	}
}

func TestRequiredWinsOverPreferred(t *testing.T) {
	// "Golang" reads as required while the later "Go" mention sits next
	// to nice-to-have wording; both resolve to the same canonical skill.
	text := "Golang and PostgreSQL are essential for the role. " +
		"The team maintains a large fleet of internal services and batch jobs " +
		"across several environments. Familiarity with Go tooling is a plus."
	rec, err := Parse("Engineer", text, vocab.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !equalStrings(rec.RequiredSkills, []string{"go", "postgresql"}) {
		t.Errorf("RequiredSkills = %v, want [go postgresql]", rec.RequiredSkills)
	}
	if len(rec.PreferredSkills) != 0 {
		t.Errorf("PreferredSkills = %v, want none", rec.PreferredSkills)
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
