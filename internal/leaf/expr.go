package leaf

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/joeycumines/nodetree/internal/behavior"
)

// Expr is a condition leaf evaluating an expr-lang boolean expression against
// a fixed environment.
//
//	check, err := leaf.NewExpr("distance <= threshold", map[string]any{
//		"distance":  3,
//		"threshold": 5,
//	})
type Expr struct {
	behavior.Leaf
	expression string
	env        map[string]any
	program    *vm.Program
	opts       options
}

var _ behavior.Node = (*Expr)(nil)

// NewExpr compiles expression against env. The expression must produce a
// boolean; compilation errors, including type errors, are returned here.
// The env map is copied.
func NewExpr(expression string, env map[string]any, opts ...Option) (*Expr, error) {
	env = maps.Clone(env)
	if env == nil {
		env = map[string]any{}
	}
	program, err := expr.Compile(expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("leaf: compile expression %q: %w", expression, err)
	}
	return &Expr{
		expression: expression,
		env:        env,
		program:    program,
		opts:       newOptions(opts),
	}, nil
}

// Execute runs the compiled program. An evaluation error is logged and
// reported as failure.
func (e *Expr) Execute() bool {
	result, err := expr.Run(e.program, e.env)
	if err != nil {
		e.opts.logger.Error("[BT] expression leaf evaluation error",
			"expression", e.expression,
			"error", err)
		return false
	}
	ok, _ := result.(bool)
	return ok
}

// Expression returns the source expression.
func (e *Expr) Expression() string { return e.expression }

func (e *Expr) String() string { return "expr " + e.expression }
