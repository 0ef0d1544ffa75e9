package output

// Expression is a configured value evaluated against the current memory
// scope each time it is used.
type Expression interface {
	Evaluate(scope map[string]any) (any, error)
	String() string
}

// ExpressionParser compiles expression source text.
type ExpressionParser interface {
	Parse(src string) (Expression, error)
}
