// Package catalog is the grade → topic catalog the UI offers and the
// generator registry must cover.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Kindergarten is grade 0.
const Kindergarten = 0

type gradeEntry struct {
	Grade  int      `yaml:"grade"`
	Name   string   `yaml:"name"`
	Topics []string `yaml:"topics"`
}

type document struct {
	Grades []gradeEntry `yaml:"grades"`
}

// Catalog holds the ordered topics of every grade.
type Catalog struct {
	grades  []gradeEntry
	byGrade map[int]gradeEntry
	gradeOf map[string]int // keyed by Key(topic)
	names   map[string]string
}

// Parse decodes a catalog document. Topic IDs must be unique across all
// grades (compared case-insensitively) and every grade must list at least
// one topic.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Grades) == 0 {
		return nil, fmt.Errorf("catalog has no grades")
	}

	c := &Catalog{
		byGrade: make(map[int]gradeEntry, len(doc.Grades)),
		gradeOf: make(map[string]int),
		names:   make(map[string]string),
	}
	for _, g := range doc.Grades {
		if _, dup := c.byGrade[g.Grade]; dup {
			return nil, fmt.Errorf("grade %d listed twice", g.Grade)
		}
		if len(g.Topics) == 0 {
			return nil, fmt.Errorf("grade %d has no topics", g.Grade)
		}
		for i, t := range g.Topics {
			t = strings.TrimSpace(t)
			if t == "" {
				return nil, fmt.Errorf("grade %d: empty topic at position %d", g.Grade, i)
			}
			k := Key(t)
			if prev, dup := c.gradeOf[k]; dup {
				return nil, fmt.Errorf("topic %q listed in grade %d and grade %d", t, prev, g.Grade)
			}
			c.gradeOf[k] = g.Grade
			c.names[k] = t
			g.Topics[i] = t
		}
		c.byGrade[g.Grade] = g
		c.grades = append(c.grades, g)
	}
	sort.Slice(c.grades, func(i, j int) bool { return c.grades[i].Grade < c.grades[j].Grade })
	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Key folds a topic ID for case-insensitive lookups.
func Key(topic string) string {
	return cases.Fold().String(strings.TrimSpace(topic))
}

// Grades returns all grades in ascending order.
func (c *Catalog) Grades() []int {
	return lo.Map(c.grades, func(g gradeEntry, _ int) int { return g.Grade })
}

// ListTopics returns the ordered topics of a grade, or nil for an unknown
// grade.
func (c *Catalog) ListTopics(grade int) []string {
	g, ok := c.byGrade[grade]
	if !ok {
		return nil
	}
	return append([]string(nil), g.Topics...)
}

// All returns every topic, grade by grade.
func (c *Catalog) All() []string {
	return lo.FlatMap(c.grades, func(g gradeEntry, _ int) []string { return g.Topics })
}

// GradeOf returns the grade a topic belongs to.
func (c *Catalog) GradeOf(topic string) (int, bool) {
	g, ok := c.gradeOf[Key(topic)]
	return g, ok
}

// Canonical returns the catalog spelling of a topic ID.
func (c *Catalog) Canonical(topic string) (string, bool) {
	n, ok := c.names[Key(topic)]
	return n, ok
}

// GradeName returns the display name of a grade.
func (c *Catalog) GradeName(grade int) string {
	if g, ok := c.byGrade[grade]; ok && g.Name != "" {
		return g.Name
	}
	if grade == Kindergarten {
		return "Kindergarten"
	}
	return fmt.Sprintf("Grade %d", grade)
}

// MagnitudeBound is the largest operand magnitude generators may sample at
// a grade. It never decreases as the grade rises. Grade 1 counts to 100.
func MagnitudeBound(grade int) int {
	switch {
	case grade <= 0:
		return 10
	case grade == 1:
		return 100
	case grade == 2:
		return 1_000
	case grade == 3:
		return 10_000
	case grade == 4:
		return 100_000
	default:
		return 1_000_000
	}
}
