package minor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"

	"github.com/s6dafabe/kminor/internal/graph"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Checker decides whether gr contains a K_k minor and, on success,
// produces a validated witness. A Checker is scoped to exactly one
// (graph, k) instance: NewChecker builds the formula once; Run
// invokes the solver once; the accessors below read the result
// exactly as many times as the caller likes.
type Checker struct {
	gr     *graph.Graph
	k      int
	pool   *variablePool
	g      *gini.Gini
	tracer Tracer

	hasRun  bool
	sat     bool
	runtime time.Duration
}

// Option configures a Checker at construction time.
type Option func(*Checker)

// WithTracer overrides the default no-op Tracer.
func WithTracer(t Tracer) Option {
	return func(c *Checker) { c.tracer = t }
}

// NewChecker builds the SAT encoding of "gr has a K_k minor" and
// returns a Checker ready for Run. It returns ErrInvalidK if k < 1.
func NewChecker(gr *graph.Graph, k int, opts ...Option) (*Checker, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	c := &Checker{
		gr:     gr,
		k:      k,
		tracer: DefaultTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	capHint := gr.N() * k
	if capHint < 16 {
		capHint = 16
	}
	c.pool = newVariablePool(capHint)
	c.g = gini.New()

	encode(c.g, c.pool, gr, k)
	c.pool.c.ToCnf(c.g)

	c.tracer.Trace(Event{Stage: StageEncoded, Vertices: gr.N(), K: k})
	return c, nil
}

// Run invokes the SAT solver exactly once and records how long it
// took. If ctx carries a deadline, Run honors it via the solver's
// timed Try; otherwise it blocks until a verdict is reached. Run
// returns ErrIndeterminate, without altering any prior result, if ctx
// is already done or its deadline expires before a verdict.
func (c *Checker) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return ErrIndeterminate
	}

	start := time.Now()
	var outcome int
	if deadline, ok := ctx.Deadline(); ok {
		outcome = c.g.Try(time.Until(deadline))
	} else {
		outcome = c.g.Solve()
	}
	runtime := time.Since(start)

	switch outcome {
	case satisfiable:
		c.sat = true
	case unsatisfiable:
		c.sat = false
	default:
		c.tracer.Trace(Event{Stage: StageIndeterminate, Vertices: c.gr.N(), K: c.k})
		return ErrIndeterminate
	}

	c.runtime = runtime
	c.hasRun = true
	c.tracer.Trace(Event{
		Stage:       StageSolved,
		Vertices:    c.gr.N(),
		K:           c.k,
		Satisfiable: c.sat,
		Runtime:     c.runtime,
	})
	return nil
}

func (c *Checker) requireRun() {
	if !c.hasRun {
		panic(usageError("minor: Checker method called before Run produced a verdict"))
	}
}

// ContainsMinor reports whether gr contains a K_k minor. It panics if
// called before Run has produced a verdict.
func (c *Checker) ContainsMinor() bool {
	c.requireRun()
	return c.sat
}

// Runtime returns how long the solver took to produce its verdict. It
// panics if called before Run has produced a verdict.
func (c *Checker) Runtime() time.Duration {
	c.requireRun()
	return c.runtime
}

// Solution returns the vertex -> branch-set assignment of a
// satisfying model: solution[v] is the branch set v belongs to, or -1
// if v belongs to none. The assignment is validated independently
// before being returned; a validation failure panics, since it can
// only indicate a bug in the encoder or decoder. Solution panics if
// called before Run has produced a verdict, or if the verdict was
// unsatisfiable.
func (c *Checker) Solution() []int {
	c.requireRun()
	if !c.sat {
		panic(usageError("minor: Solution called but the formula is unsatisfiable"))
	}

	solution := decode(c.g, c.pool, c.gr.N(), c.k)
	ok, err := validate(solution, c.gr, c.k)
	if !ok {
		panic(internalInconsistencyError{reason: err})
	}
	return solution
}
