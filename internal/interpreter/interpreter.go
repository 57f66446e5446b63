package interpreter

import (
	"fmt"

	"github.com/tupyy/either/either"
)

// EvaluationError is the type of error returned by interpreter when evaluating errors.
type EvaluationError struct {
	// Expression being evaluated when the error occurred.
	Expr Expr
	// Error message.
	Message string
}

// Error returns a formatted version of the error, including the expression.
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("expr '%s': %s", e.Expr.String(), e.Message)
}

func newEvaluationError(e Expr, format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	return &EvaluationError{Expr: e, Message: message}
}

type Interpreter struct {
	expr Expr
}

// New parses the expression and returns an interpreter for it.
func New(expression string) either.Either[*Interpreter, error] {
	return either.Map(Parse(expression), func(expr Expr) *Interpreter {
		return &Interpreter{expr}
	})
}

// Eval parses and evaluates the expression in one step.
func Eval(expression string, variables map[string]interface{}) either.Either[bool, error] {
	return either.FlatMap(New(expression), func(i *Interpreter) either.Either[bool, error] {
		return i.Evaluate(variables)
	})
}

// Evaluate evaluates the expression to bool.
func (i *Interpreter) Evaluate(variables map[string]interface{}) either.Either[bool, error] {
	a := newAst(variables)

	return either.FlatMap(i.expr.Accept(a), func(v value) either.Either[bool, error] {
		if v.typ != typeBool {
			return either.Failure[bool](newEvaluationError(i.expr, "expected bool value. actual '%s'", v.typ))
		}
		return either.Success[bool, error](v.b)
	})
}

func (i *Interpreter) String() string {
	return i.expr.String()
}
