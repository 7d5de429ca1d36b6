// Package vocab holds the skill, heading, and degree vocabularies the
// analysis core matches against. A Vocabulary is immutable once loaded;
// callers share one instance across a whole batch without locking.
package vocab

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// EducationLevel orders degrees from none to doctorate.
type EducationLevel int

const (
	LevelNone EducationLevel = iota
	LevelAssociate
	LevelBachelor
	LevelMaster
	LevelDoctorate
)

// String returns the lowercase level name.
func (l EducationLevel) String() string {
	switch l {
	case LevelAssociate:
		return "associate"
	case LevelBachelor:
		return "bachelor"
	case LevelMaster:
		return "master"
	case LevelDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

type fileFormat struct {
	TechnicalSkills map[string][]string `yaml:"technical_skills"`
	SoftSkills      []string            `yaml:"soft_skills"`
	Synonyms        map[string]string   `yaml:"synonyms"`
	Languages       []string            `yaml:"languages"`
	SectionHeadings map[string][]string `yaml:"section_headings"`
	DegreeLevels    map[string][]string `yaml:"degree_levels"`
	JobTitleWords   []string            `yaml:"job_title_keywords"`
}

// Vocabulary is the read-only lookup set used by the resume and
// requirement parsers and the matching engine.
type Vocabulary struct {
	technical     map[string]struct{}
	soft          map[string]struct{}
	synonyms      map[string]string
	languages     []string
	headings      map[string][]string
	degreeTokens  map[EducationLevel][]string
	titleWords    map[string]struct{}
	technicalList []string
	softList      []string
	techScan      []string
	softScan      []string
}

var (
	defaultOnce sync.Once
	defaultVoc  *Vocabulary
)

// Default returns the vocabulary built from the embedded defaults.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := Load(strings.NewReader(string(defaultsYAML)))
		if err != nil {
			// The embedded asset is part of the build; a parse failure
			// is a programmer error, not a runtime condition.
			panic(fmt.Sprintf("vocab: embedded defaults invalid: %v", err))
		}
		defaultVoc = v
	})
	return defaultVoc
}

// LoadFile reads a vocabulary override from a YAML file.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocab file: %w", err)
	}
	defer f.Close()
	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load vocab file %s: %w", path, err)
	}
	return v, nil
}

// Load parses a vocabulary from YAML.
func Load(r io.Reader) (*Vocabulary, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read vocab: %w", err)
	}

	var ff fileFormat
	if err := yaml.Unmarshal(raw, &ff); err != nil {
		return nil, fmt.Errorf("parse vocab yaml: %w", err)
	}
	if len(ff.TechnicalSkills) == 0 {
		return nil, fmt.Errorf("vocab has no technical_skills")
	}
	if len(ff.SoftSkills) == 0 {
		return nil, fmt.Errorf("vocab has no soft_skills")
	}

	v := &Vocabulary{
		technical:    make(map[string]struct{}),
		soft:         make(map[string]struct{}),
		synonyms:     make(map[string]string),
		headings:     make(map[string][]string),
		degreeTokens: make(map[EducationLevel][]string),
		titleWords:   make(map[string]struct{}),
	}

	for _, skills := range ff.TechnicalSkills {
		for _, s := range skills {
			if key := normalize(s); key != "" {
				v.technical[key] = struct{}{}
			}
		}
	}
	for _, s := range ff.SoftSkills {
		if key := normalize(s); key != "" {
			v.soft[key] = struct{}{}
		}
	}
	for alias, canonical := range ff.Synonyms {
		a, c := normalize(alias), normalize(canonical)
		if a != "" && c != "" {
			v.synonyms[a] = c
		}
	}
	for _, l := range ff.Languages {
		if key := normalize(l); key != "" {
			v.languages = append(v.languages, key)
		}
	}
	for section, hs := range ff.SectionHeadings {
		for _, h := range hs {
			if key := normalize(h); key != "" {
				v.headings[section] = append(v.headings[section], key)
			}
		}
	}
	for name, tokens := range ff.DegreeLevels {
		level := levelFromName(name)
		if level == LevelNone {
			return nil, fmt.Errorf("vocab has unknown degree level %q", name)
		}
		for _, tok := range tokens {
			if key := normalize(tok); key != "" {
				v.degreeTokens[level] = append(v.degreeTokens[level], key)
			}
		}
	}
	for _, w := range ff.JobTitleWords {
		if key := normalize(w); key != "" {
			v.titleWords[key] = struct{}{}
		}
	}

	v.technicalList = sortedKeys(v.technical)
	v.softList = sortedKeys(v.soft)
	v.techScan = append(v.techScan, v.technicalList...)
	v.softScan = append(v.softScan, v.softList...)
	for alias, canonical := range v.synonyms {
		if _, ok := v.technical[canonical]; ok {
			v.techScan = append(v.techScan, alias)
		}
		if _, ok := v.soft[canonical]; ok {
			v.softScan = append(v.softScan, alias)
		}
	}
	sort.Strings(v.techScan)
	sort.Strings(v.softScan)
	sort.Strings(v.languages)
	return v, nil
}

// Canonical lowercases the term and resolves it through the synonym table.
func (v *Vocabulary) Canonical(term string) string {
	key := normalize(term)
	if canonical, ok := v.synonyms[key]; ok {
		return canonical
	}
	return key
}

// IsTechnical reports whether the term (or its canonical form) is a known
// technical skill.
func (v *Vocabulary) IsTechnical(term string) bool {
	_, ok := v.technical[v.Canonical(term)]
	return ok
}

// IsSoft reports whether the term (or its canonical form) is a known
// soft skill.
func (v *Vocabulary) IsSoft(term string) bool {
	_, ok := v.soft[v.Canonical(term)]
	return ok
}

// IsLanguage reports whether the term is a known spoken language.
func (v *Vocabulary) IsLanguage(term string) bool {
	key := normalize(term)
	for _, l := range v.languages {
		if l == key {
			return true
		}
	}
	return false
}

// TechnicalSkills returns the sorted canonical technical skill list.
func (v *Vocabulary) TechnicalSkills() []string { return v.technicalList }

// SoftSkills returns the sorted canonical soft skill list.
func (v *Vocabulary) SoftSkills() []string { return v.softList }

// Languages returns the sorted known language list.
func (v *Vocabulary) Languages() []string { return v.languages }

// TechnicalScanTerms returns every surface form worth scanning free text
// for: canonical technical skills plus their synonym aliases, sorted.
func (v *Vocabulary) TechnicalScanTerms() []string { return v.techScan }

// SoftScanTerms is the soft-skill counterpart of TechnicalScanTerms.
func (v *Vocabulary) SoftScanTerms() []string { return v.softScan }

// SectionHeadings returns the heading phrases for a logical section name
// (experience, education, skills, certifications, languages, summary).
func (v *Vocabulary) SectionHeadings(section string) []string {
	return v.headings[section]
}

// DegreeLevel returns the highest education level whose tokens appear in
// the line, or LevelNone.
func (v *Vocabulary) DegreeLevel(line string) EducationLevel {
	lower := normalize(line)
	best := LevelNone
	for level := LevelDoctorate; level > LevelNone; level-- {
		for _, tok := range v.degreeTokens[level] {
			if containsToken(lower, tok) {
				if level > best {
					best = level
				}
				break
			}
		}
		if best != LevelNone {
			break
		}
	}
	return best
}

// IsJobTitleLine reports whether the line looks like a job title.
func (v *Vocabulary) IsJobTitleLine(line string) bool {
	for _, word := range strings.Fields(normalize(line)) {
		word = strings.Trim(word, ",.;:()")
		if _, ok := v.titleWords[word]; ok {
			return true
		}
	}
	return false
}

// TermIndex returns the byte offset of the first occurrence of term in
// text on non-alphanumeric boundaries, or -1. Matching is
// case-insensitive; "ba" never matches inside "background" and "java"
// never matches inside "javascript".
func TermIndex(text, term string) int {
	return tokenIndex(strings.ToLower(text), normalize(term))
}

// containsToken matches tok inside s on non-alphanumeric boundaries.
// Both arguments must already be lowercase.
func containsToken(s, tok string) bool {
	return tokenIndex(s, tok) >= 0
}

func tokenIndex(s, tok string) int {
	if tok == "" {
		return -1
	}
	for start := 0; ; {
		idx := strings.Index(s[start:], tok)
		if idx < 0 {
			return -1
		}
		idx += start
		end := idx + len(tok)
		leftOK := idx == 0 || !isAlnum(s[idx-1])
		rightOK := end == len(s) || !isAlnum(s[end])
		if leftOK && rightOK {
			return idx
		}
		start = idx + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func levelFromName(name string) EducationLevel {
	switch normalize(name) {
	case "associate":
		return LevelAssociate
	case "bachelor":
		return LevelBachelor
	case "master":
		return LevelMaster
	case "doctorate":
		return LevelDoctorate
	default:
		return LevelNone
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
