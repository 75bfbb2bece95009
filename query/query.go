// Package query evaluates expr-lang expressions against decoded FotMob documents.
//
// An object document exposes its top-level keys as variables, so
// `details.name` or `len(matches.allMatches)` work directly. The whole
// document is always reachable as `root`, which is the only way to address
// array or scalar documents (`root[0].id`). `root` and the helper names
// shadow document keys of the same name.
package query

import (
	"errors"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/fotmob/fotmob"
)

// DefaultCacheSize is the number of compiled programs kept by NewCompiler
const DefaultCacheSize = 64

// Query is a compiled expression. It is safe for concurrent use.
type Query struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache sets the compiled program cache size; 0 disables caching
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		} else {
			c.cache = nil
		}
	}
}

// WithHelpers adds custom helper functions
func WithHelpers(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helpers, funcs)
	}
}

// Compiler compiles expressions into Queries
type Compiler struct {
	helpers map[string]any
	cache   *lruCache
}

// NewCompiler creates a compiler with the default helpers and cache
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helpers: createHelperFunctions(),
		cache:   newLRUCache(DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses and type-checks an expression
func (c *Compiler) Compile(expression string) (*Query, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Position:   -1,
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(), // document keys are only known at run time
	)
	if err != nil {
		return nil, newCompilationError(expression, err)
	}

	q := &Query{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.Put(expression, q)
	}

	return q, nil
}

// Size returns the number of cached programs
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Clear removes all cached programs
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Evaluate runs the query against a document and returns a plain Go value
// (map[string]any, []any, string, int, float64, bool or nil).
func (q *Query) Evaluate(doc fotmob.Value) (any, error) {
	result, err := expr.Run(q.program, q.environment(doc))
	if err != nil {
		return nil, &EvaluationError{
			Expression: q.expression,
			Reason:     err.Error(),
			Err:        err,
		}
	}
	return result, nil
}

// Expression returns the trimmed expression text
func (q *Query) Expression() string {
	return q.expression
}

func (q *Query) environment(doc fotmob.Value) map[string]any {
	root := doc.Native()

	env := make(map[string]any, doc.Len()+len(q.helpers)+1)
	if members, ok := root.(map[string]any); ok {
		maps.Copy(env, members)
	}
	maps.Copy(env, q.helpers)
	env["root"] = root

	return env
}

func newCompilationError(expression string, err error) *CompilationError {
	compErr := &CompilationError{
		Expression: expression,
		Reason:     err.Error(),
		Position:   -1,
		Err:        err,
	}

	var fileErr *file.Error
	if errors.As(err, &fileErr) {
		compErr.Reason = fileErr.Message
		compErr.Position = fileErr.Column
	}

	return compErr
}

// createHelperFunctions returns the helpers available to every query.
// expr builtins (len, lower, upper, filter, map, now, ...) are available as well.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"parseTime": func(value string) time.Time {
			t, _ := time.Parse(time.RFC3339, value)
			return t
		},
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
	}
}

var defaultCompiler = NewCompiler()

// Evaluate compiles (through a shared cache) and runs expression against doc
func Evaluate(expression string, doc fotmob.Value) (any, error) {
	q, err := defaultCompiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	return q.Evaluate(doc)
}
