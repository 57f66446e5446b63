package interpreter

import (
	"github.com/tupyy/either/either"
)

type AST struct {
	// variables holds the values used to evaluate the expressions.
	variables map[string]interface{}
}

func newAst(v map[string]interface{}) *AST {
	return &AST{variables: v}
}

func (a *AST) visitCompExpr(e *CompExpr) result {
	return either.FlatMap(e.Left.Accept(a), func(left value) result {
		return either.FlatMap(e.Right.Accept(a), func(right value) result {
			if left.typ != right.typ {
				return either.Failure[value](newEvaluationError(e, "type mismatch between left '%s' and right '%s' expression", left.typ, right.typ))
			}

			if left.typ == typeBool {
				switch e.Op {
				case EQUALS:
					return either.Success[value, error](boolean(left.b == right.b))
				case NOT_EQUALS:
					return either.Success[value, error](boolean(left.b != right.b))
				default:
					return either.Failure[value](newEvaluationError(e, "bool type does not support '%s' operator", e.Op))
				}
			}

			switch e.Op {
			case LESS:
				return either.Success[value, error](boolean(left.n < right.n))
			case LTE:
				return either.Success[value, error](boolean(left.n <= right.n))
			case GREATER:
				return either.Success[value, error](boolean(left.n > right.n))
			case GTE:
				return either.Success[value, error](boolean(left.n >= right.n))
			case EQUALS:
				return either.Success[value, error](boolean(left.n == right.n))
			case NOT_EQUALS:
				return either.Success[value, error](boolean(left.n != right.n))
			default:
				return either.Failure[value](newEvaluationError(e, "operator '%s' not supported", e.Op))
			}
		})
	})
}

// visitLogicExpr evaluates both sides so that an error on the right side is reported
// even when the left side alone decides the result.
func (a *AST) visitLogicExpr(e *LogicExpr) result {
	return either.FlatMap(a.boolOperand(e, e.Left), func(left bool) result {
		return either.FlatMap(a.boolOperand(e, e.Right), func(right bool) result {
			switch e.Op {
			case AND:
				return either.Success[value, error](boolean(left && right))
			case OR:
				return either.Success[value, error](boolean(left || right))
			default:
				return either.Failure[value](newEvaluationError(e, "operator '%s' not supported", e.Op))
			}
		})
	})
}

func (a *AST) boolOperand(parent Expr, operand Expr) either.Either[bool, error] {
	return either.FlatMap(operand.Accept(a), func(v value) either.Either[bool, error] {
		if v.typ != typeBool {
			return either.Failure[bool](newEvaluationError(parent, "expected bool operand. actual '%s'", v.typ))
		}
		return either.Success[bool, error](v.b)
	})
}

func (a *AST) visitNumExpr(e *NumExpr) result {
	return either.Success[value, error](num(e.Value))
}

func (a *AST) visitValueExpr(e *ValueExpr) result {
	multiplier, ok := unitMultiplier(e.Unit)
	if !ok {
		return either.Failure[value](newEvaluationError(e, "unknown unit '%s'", e.Unit))
	}

	return either.Map(e.Number.Accept(a), func(v value) value {
		return num(v.n * multiplier)
	})
}

func (a *AST) visitLiteralExpr(e *LiteralExpr) result {
	v, ok := a.variables[e.Name]
	if !ok {
		return either.Failure[value](newEvaluationError(e, "cannot find variable %s", e.Name))
	}

	// check the type of the variable
	switch vv := v.(type) {
	case bool:
		return either.Success[value, error](boolean(vv))
	case float64:
		return either.Success[value, error](num(vv))
	case float32:
		return either.Success[value, error](num(float64(vv)))
	case int:
		return either.Success[value, error](num(float64(vv)))
	case int64:
		return either.Success[value, error](num(float64(vv)))
	default:
		return either.Failure[value](newEvaluationError(e, "variable '%s' has the wrong type", e.Name))
	}
}

func (a *AST) visitBoolExpr(e *BoolExpr) result {
	return either.Success[value, error](boolean(e.Value))
}
