// Package expression evaluates configured values written in HCL expression
// syntax, e.g. `this.value ? "booked" : "skipped"`.
package expression

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/tryfunc"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"confirmbot/internal/domain"
	"confirmbot/internal/ports/output"
)

var _ output.ExpressionParser = (*Parser)(nil)

var functions = map[string]function.Function{
	"try":       tryfunc.TryFunc,
	"can":       tryfunc.CanFunc,
	"upper":     stdlib.UpperFunc,
	"lower":     stdlib.LowerFunc,
	"trimspace": stdlib.TrimSpaceFunc,
	"format":    stdlib.FormatFunc,
	"length":    stdlib.LengthFunc,
	"join":      stdlib.JoinFunc,
	"concat":    stdlib.ConcatFunc,
	"coalesce":  stdlib.CoalesceFunc,
	"contains":  stdlib.ContainsFunc,
}

// Parser compiles HCL expressions.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

func (p *Parser) Parse(src string) (output.Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "expression", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %q: %s", domain.ErrInvalidExpression, src, diags.Error())
	}
	return &hclExpression{src: src, expr: expr}, nil
}

type hclExpression struct {
	src  string
	expr hclsyntax.Expression
}

func (e *hclExpression) String() string { return e.src }

func (e *hclExpression) Evaluate(scope map[string]any) (any, error) {
	vars := make(map[string]cty.Value, len(scope))
	for k, v := range scope {
		vars[k] = toCty(v)
	}
	val, diags := e.expr.Value(&hcl.EvalContext{Variables: vars, Functions: functions})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %q: %s", domain.ErrInvalidExpression, e.src, diags.Error())
	}
	return fromCty(val), nil
}

type literal struct {
	value any
}

// Literal wraps a constant as an Expression.
func Literal(v any) output.Expression { return literal{value: v} }

func (l literal) Evaluate(map[string]any) (any, error) { return l.value, nil }

func (l literal) String() string { return fmt.Sprint(l.value) }

// Property turns a configured value into an Expression: strings starting with
// "=" are parsed as expressions, anything else is a literal. nil yields nil.
func Property(p output.ExpressionParser, raw any) (output.Expression, error) {
	if raw == nil {
		return nil, nil
	}
	if s, ok := raw.(string); ok {
		if src, isExpr := strings.CutPrefix(strings.TrimSpace(s), "="); isExpr {
			return p.Parse(src)
		}
	}
	return Literal(raw), nil
}
