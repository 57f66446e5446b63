// Grammar
//
// expression: and ( "||" and )*								;
// and:        primary ( "&&" primary )*						;
// primary:    "(" expression ")" | comparison					;
// comparison: literal ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) value	;
// value:      "true" | "false" | numerical unit?				;
// numerical:  "-"? NUMBER										;
// literal:    STRING											;
// unit:       STRING											;

package interpreter

import (
	"fmt"
	"strconv"

	"github.com/tupyy/either/either"
)

// ParseError (actually *ParseError) is the type of error returned by Parse.
type ParseError struct {
	// Column position where the error occurred.
	Position int
	// Error message.
	Message string
}

// Error returns a formatted version of the error, including the column.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at column %d: %s", e.Position, e.Message)
}

type parser struct {
	// Lexer instance and current token values
	lexer *lexer
	pos   int    // position of last token (tok)
	tok   Token  // last lexed token
	val   string // string value of last token (or "")
}

// Parse parses the expression. The result is either the root of the expression tree or a *ParseError.
func Parse(expression string) either.Either[Expr, error] {
	expr, err := parse([]byte(expression))
	if err != nil {
		return either.Failure[Expr](err)
	}

	return either.Success[Expr, error](expr)
}

func parse(src []byte) (expr Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			// Convert to ParseError or re-panic
			parseErr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			expr, err = nil, parseErr
		}
	}()

	lexer := newLexer(src)
	p := parser{lexer: lexer}
	p.next() // initialize p.tok

	// parse the expression
	expr = p.expression()

	if !p.matches(EOL) {
		panic(p.errorf("unexpected '%s' after expression", p.tok))
	}

	return
}

// Parse an expression
//
// expression: and ( "||" and )*
//
func (p *parser) expression() Expr {
	expr := p.and()

	for p.matches(OR) {
		op := p.tok
		p.next()
		expr = &LogicExpr{Left: expr, Op: op, Right: p.and()}
	}

	return expr
}

// and: primary ( "&&" primary )*
func (p *parser) and() Expr {
	expr := p.primary()

	for p.matches(AND) {
		op := p.tok
		p.next()
		expr = &LogicExpr{Left: expr, Op: op, Right: p.primary()}
	}

	return expr
}

// primary: "(" expression ")" | comparison
func (p *parser) primary() Expr {
	if p.matches(LPAREN) {
		p.next()
		expr := p.expression()
		p.consume(RPAREN, "expected ')' after expression")
		return expr
	}

	return p.comparison()
}

// Parse comparison expression
//
// comparison: literal ( "==" | "!=" | "<" | "<=" | ">" | ">=" ) value
//
func (p *parser) comparison() Expr {
	expr := &CompExpr{Left: p.literal()}

	switch p.tok {
	case GREATER, GTE, LESS, LTE, EQUALS, NOT_EQUALS:
		expr.Op = p.tok
		p.next()
	default:
		panic(p.errorf("expected comparison operator instead of %s", p.tok))
	}

	expr.Right = p.value()

	return expr
}

// Parse a value
func (p *parser) value() Expr {
	if p.tok == STRING && (p.val == "true" || p.val == "false") {
		expr := &BoolExpr{Value: p.val == "true"}
		p.next()
		return expr
	}

	v := &ValueExpr{Number: p.numerical()}

	if p.tok == STRING {
		if _, ok := unitMultiplier(p.val); !ok {
			panic(p.errorf("unknown unit '%s'", p.val))
		}
		v.Unit = p.val
		p.next()
	}

	return v
}

// Parse literal
//
// STRING
//
func (p *parser) literal() Expr {
	p.expect(STRING)

	expr := &LiteralExpr{p.val}

	p.next()

	return expr
}

func (p *parser) numerical() *NumExpr {
	if p.tok != DEC && p.tok != NUMBER {
		panic(p.errorf("expected '-' or number instead of %s", p.tok))
	}

	isNegative := false
	if p.tok == DEC {
		isNegative = true
		p.next()
	}

	p.expect(NUMBER)

	value, err := strconv.ParseFloat(p.val, 64)
	if err != nil {
		panic(p.errorf("expected number instead of '%s'", p.val))
	}

	if isNegative {
		value = -1 * value
	}

	p.next()

	return &NumExpr{value}
}

// Parse next token into p.tok (and set p.pos and p.val).
func (p *parser) next() {
	p.pos, p.tok, p.val = p.lexer.Scan()
	if p.tok == ILLEGAL {
		panic(p.errorf("%s", p.val))
	}
}

// Return true iff current token matches one of the given operators,
// but don't parse next token.
func (p *parser) matches(operators ...Token) bool {
	for _, operator := range operators {
		if p.tok == operator {
			return true
		}
	}
	return false
}

// Ensure current token is tok.
func (p *parser) expect(tok Token) {
	if p.tok != tok {
		panic(p.errorf("expected %s instead of %s", tok, p.tok))
	}
}

func (p *parser) consume(tok Token, msg string) {
	if !p.matches(tok) {
		panic(p.errorf("%s", msg))
	}
	p.next()
}

// Format given string and args with Sprintf and return an error
// with that message and the current position.
func (p *parser) errorf(format string, args ...interface{}) error {
	message := fmt.Sprintf(format, args...)
	return &ParseError{p.pos, message}
}
