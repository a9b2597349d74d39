package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/getmockd/shapemock/internal/ordered"
	"github.com/getmockd/shapemock/pkg/logging"
	"github.com/getmockd/shapemock/pkg/lorem"
	"github.com/getmockd/shapemock/pkg/schema"
)

// Generation errors.
var (
	ErrUnknownKind   = errors.New("no randomizer for field kind")
	ErrEmptyRange    = errors.New("empty range")
	ErrRangeOverflow = errors.New("range out of bounds")
	ErrMissingInner  = errors.New("array field has no element type")
	ErrMissingKey    = errors.New("object field has no key or value")
	ErrMissingSchema = errors.New("nested field has no schema")
)

// MaxLength caps the max bound of string and array fields, which count
// words and elements.
const MaxLength = 1 << 20

// Value is a generated value tree. Keys follow the schema's field order.
type Value = *ordered.Map

// Options controls a single Generate call.
type Options struct {
	// ExcludeOptional drops every field whose descriptor is not required,
	// at every depth.
	ExcludeOptional bool

	// Delay is not used by the generator; see the mocker package.
	Delay time.Duration
}

// randomizer produces a value for one field.
type randomizer func(f *schema.Field, opts Options) (any, error)

// Generator produces value trees for one schema.
type Generator struct {
	schema      *schema.Schema
	rand        RandomSource
	text        TextProvider
	logger      *slog.Logger
	randomizers map[schema.Kind]randomizer
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand replaces the random source. Tests pass a seeded *rand.Rand.
func WithRand(r RandomSource) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithText replaces the filler text provider.
func WithText(p TextProvider) Option {
	return func(g *Generator) {
		if p != nil {
			g.text = p
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator for s.
func New(s *schema.Schema, opts ...Option) *Generator {
	g := &Generator{
		schema: s,
		rand:   globalSource{},
		text:   lorem.Default,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.randomizers = make(map[schema.Kind]randomizer, len(schema.Kinds()))
	for _, k := range schema.Kinds() {
		g.randomizers[k] = g.randomizerFor(k)
	}
	return g
}

// randomizerFor maps each kind to its randomizer. Adding a kind to the
// schema package without a case here leaves it without a randomizer and
// TestNew_CoversEveryKind fails.
func (g *Generator) randomizerFor(k schema.Kind) randomizer {
	switch k {
	case schema.KindString:
		return g.genString
	case schema.KindBoolean:
		return g.genBoolean
	case schema.KindNumber:
		return g.genNumber
	case schema.KindInteger:
		return g.genInteger
	case schema.KindArray:
		return g.genArray
	case schema.KindObject:
		return g.genObject
	case schema.KindNested:
		return g.genNested
	}
	return nil
}

// Schema returns the root schema.
func (g *Generator) Schema() *schema.Schema {
	return g.schema
}

// Generate produces one value tree for the root schema.
// Any field failing to generate aborts the whole call.
func (g *Generator) Generate(opts Options) (Value, error) {
	if g.schema == nil {
		return nil, ErrMissingSchema
	}
	v, err := g.generate(g.schema, opts)
	if err != nil {
		g.logger.Debug("generation failed", "error", err)
		return nil, err
	}
	g.logger.Debug("generated value", "fields", v.Len(), "excludeOptional", opts.ExcludeOptional)
	return v, nil
}

// generate runs the whole-schema procedure for the root and for every
// nested field.
func (g *Generator) generate(s *schema.Schema, opts Options) (Value, error) {
	out := ordered.New(s.Len())
	for name, f := range s.All() {
		if !f.IsRequired() && opts.ExcludeOptional {
			continue
		}
		v, err := g.field(f, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out.Set(name, v)
	}
	return out, nil
}

func (g *Generator) field(f *schema.Field, opts Options) (any, error) {
	fn := g.randomizers[f.Kind()]
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind())
	}
	return fn(f, opts)
}

func (g *Generator) genInteger(f *schema.Field, _ Options) (any, error) {
	return RandomInt(g.rand, f.Min(), f.Max())
}

func (g *Generator) genNumber(f *schema.Field, _ Options) (any, error) {
	return RandomNumber(g.rand, f.Min(), f.Max())
}

func (g *Generator) genBoolean(_ *schema.Field, _ Options) (any, error) {
	return RandomBoolean(g.rand), nil
}

func (g *Generator) genString(f *schema.Field, _ Options) (any, error) {
	n, err := g.length(f)
	if err != nil {
		return nil, err
	}
	return g.text.Words(n), nil
}

// length draws a word or element count for f.
func (g *Generator) length(f *schema.Field) (int, error) {
	if math.Floor(f.Max()) > MaxLength {
		return 0, fmt.Errorf("%w: %s max %v above %d", ErrRangeOverflow, f.Kind(), f.Max(), MaxLength)
	}
	return RandomInt(g.rand, f.Min(), f.Max())
}

func (g *Generator) genArray(f *schema.Field, opts Options) (any, error) {
	inner := f.Inner()
	if inner == nil {
		return nil, ErrMissingInner
	}
	// Only the element type's optionality empties the array; an optional
	// array field itself is handled by the schema walk.
	if !inner.IsRequired() && opts.ExcludeOptional {
		return []any{}, nil
	}

	n, err := g.length(f)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative array length %d", ErrEmptyRange, n)
	}

	out := make([]any, n)
	for i := range out {
		v, err := g.field(inner, opts)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (g *Generator) genObject(f *schema.Field, opts Options) (any, error) {
	if f.Key() == nil || f.Value() == nil {
		return nil, ErrMissingKey
	}
	k, err := g.field(f.Key(), opts)
	if err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}
	v, err := g.field(f.Value(), opts)
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	out := ordered.New(1)
	out.Set(keyString(k), v)
	return out, nil
}

func (g *Generator) genNested(f *schema.Field, opts Options) (any, error) {
	if f.Schema() == nil {
		return nil, ErrMissingSchema
	}
	return g.generate(f.Schema(), opts)
}

// keyString renders a generated basic value as a map key.
func keyString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
