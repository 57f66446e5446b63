package interpreter

import (
	"fmt"
	"strconv"

	"github.com/tupyy/either/either"
)

// result is the outcome of evaluating an expression.
type result = either.Either[value, error]

type Expr interface {
	String() string
	Accept(a *AST) result // visitor pattern
}

// LiteralExpr is an expression like 'cpu123'
type LiteralExpr struct {
	Name string
}

func (l *LiteralExpr) String() string {
	return l.Name
}

// Accept looks into AST variables map and returns the value of the variable.
func (l *LiteralExpr) Accept(a *AST) result {
	return a.visitLiteralExpr(l)
}

// NumExpr is an expression like 1234.
type NumExpr struct {
	Value float64
}

func (n *NumExpr) String() string {
	if n.Value == float64(int64(n.Value)) {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return fmt.Sprintf("%.6g", n.Value)
}

func (n *NumExpr) Accept(a *AST) result {
	return a.visitNumExpr(n)
}

// ValueExpr is an expression like 100Gib
type ValueExpr struct {
	Number *NumExpr
	Unit   string
}

func (v *ValueExpr) String() string {
	if v.Unit != "" {
		return fmt.Sprintf("%s %s", v.Number.String(), v.Unit)
	}
	return v.Number.String()
}

func (v *ValueExpr) Accept(a *AST) result {
	return a.visitValueExpr(v)
}

// CompExpr is an expression like cpu < 23%
type CompExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (c *CompExpr) String() string {
	return fmt.Sprintf("( %s %s %s )", c.Left.String(), c.Op.String(), c.Right.String())
}

func (c *CompExpr) Accept(a *AST) result {
	return a.visitCompExpr(c)
}

// LogicExpr is an expression like x > 0 && y == 1
type LogicExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

func (l *LogicExpr) String() string {
	return fmt.Sprintf("( %s %s %s )", l.Left.String(), l.Op.String(), l.Right.String())
}

func (l *LogicExpr) Accept(a *AST) result {
	return a.visitLogicExpr(l)
}

// BoolExpr is the 'true' or 'false' constant.
type BoolExpr struct {
	Value bool
}

func (b *BoolExpr) String() string {
	return strconv.FormatBool(b.Value)
}

func (b *BoolExpr) Accept(a *AST) result {
	return a.visitBoolExpr(b)
}
