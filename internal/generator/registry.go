// Package generator maps every catalog topic to a problem generator.
package generator

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/segmentio/ksuid"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/sampler"
)

// DefaultFallbackTopic is generated when a requested topic is unknown.
const DefaultFallbackTopic = "Addition"

// Func builds one problem from fresh draws. It must not keep state between
// calls.
type Func func(d *Draw) problem.Problem

// GenerationError reports a generator that could not produce a problem.
// It always points at a generator bug; callers may retry once.
type GenerationError struct {
	Topic string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %q: %v", e.Topic, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

var errInvalidAnswer = errors.New("generator produced an invalid answer")

type entry struct {
	topic string
	grade int
	gen   Func
}

// Registry is immutable after New and safe for concurrent use. Problems
// generated through Generate share the registry's sampler; use
// GenerateWith with a private seeded sampler for reproducible output.
type Registry struct {
	entries  map[string]entry
	topics   []string
	cat      *catalog.Catalog
	sampler  *sampler.Sampler
	log      *logger.Logger
	fallback string
	misses   atomic.Int64
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for fallback warnings.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithSampler replaces the default runtime-seeded sampler.
func WithSampler(s *sampler.Sampler) Option {
	return func(r *Registry) { r.sampler = s }
}

// WithFallback overrides DefaultFallbackTopic.
func WithFallback(topic string) Option {
	return func(r *Registry) { r.fallback = topic }
}

// New registers one generator per catalog topic. It fails if a catalog
// topic has no generator, or a generator has no catalog topic.
func New(cat *catalog.Catalog, opts ...Option) (*Registry, error) {
	r := &Registry{
		entries:  make(map[string]entry),
		cat:      cat,
		sampler:  sampler.New(),
		log:      logger.Nop(),
		fallback: DefaultFallbackTopic,
	}
	for _, opt := range opts {
		opt(r)
	}

	builtins := builtinGenerators()
	for _, topic := range cat.All() {
		key := catalog.Key(topic)
		gen, ok := builtins[key]
		if !ok {
			return nil, fmt.Errorf("no generator for topic %q", topic)
		}
		grade, _ := cat.GradeOf(topic)
		r.entries[key] = entry{topic: topic, grade: grade, gen: gen}
		r.topics = append(r.topics, topic)
	}
	for key := range builtins {
		if _, ok := r.entries[key]; !ok {
			return nil, fmt.Errorf("generator %q has no catalog topic", key)
		}
	}
	if _, ok := r.entries[catalog.Key(r.fallback)]; !ok {
		return nil, fmt.Errorf("fallback topic %q is not registered", r.fallback)
	}
	return r, nil
}

// Generate returns a fresh problem for topic. Topic lookup ignores case.
// Unknown topics produce a problem from the fallback topic with
// Problem.Fallback set; they are never an error.
func (r *Registry) Generate(topic string) (problem.Problem, error) {
	return r.GenerateWith(r.sampler, topic)
}

// GenerateWith is Generate drawing from s.
func (r *Registry) GenerateWith(s *sampler.Sampler, topic string) (problem.Problem, error) {
	e, ok := r.entries[catalog.Key(topic)]
	if !ok {
		r.misses.Add(1)
		r.log.Warn("unknown topic, using fallback", "topic", topic, "fallback", r.fallback)
		e = r.entries[catalog.Key(r.fallback)]
	}

	d := &Draw{s: s, grade: e.grade}
	p := e.gen(d)
	if d.err != nil {
		return problem.Problem{}, &GenerationError{Topic: e.topic, Err: d.err}
	}
	if !p.Answer.Valid() {
		return problem.Problem{}, &GenerationError{Topic: e.topic, Err: errInvalidAnswer}
	}

	p.ID = ksuid.New().String()
	p.Topic = e.topic
	p.Grade = e.grade
	p.Fallback = !ok
	return p, nil
}

// Has reports whether topic has a registered generator.
func (r *Registry) Has(topic string) bool {
	_, ok := r.entries[catalog.Key(topic)]
	return ok
}

// Topics returns every registered topic in catalog order.
func (r *Registry) Topics() []string {
	return append([]string(nil), r.topics...)
}

// Grade returns the grade of a registered topic.
func (r *Registry) Grade(topic string) (int, bool) {
	e, ok := r.entries[catalog.Key(topic)]
	return e.grade, ok
}

// Catalog returns the catalog the registry was built from.
func (r *Registry) Catalog() *catalog.Catalog {
	return r.cat
}

// Misses counts Generate calls for unknown topics.
func (r *Registry) Misses() int64 {
	return r.misses.Load()
}

func builtinGenerators() map[string]Func {
	all := make(map[string]Func)
	for _, table := range []map[string]Func{primaryTopics, intermediateTopics, middleTopics} {
		for topic, gen := range table {
			all[catalog.Key(topic)] = gen
		}
	}
	return all
}
