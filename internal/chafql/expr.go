// Package chafql contains chaf query language parser.
package chafql

import "strings"

// Expr is a chaf query expression.
type Expr interface {
	String() string
	expr()
}

func (*AndExpr) expr()     {}
func (*OrExpr) expr()      {}
func (*NotExpr) expr()     {}
func (*LiteralExpr) expr() {}

// AndExpr is a logical conjunction.
type AndExpr struct {
	Left  Expr
	Right Expr
}

// String implements [fmt.Stringer].
func (e *AndExpr) String() string {
	return binaryString(e.Left, " & ", e.Right)
}

// OrExpr is a logical disjunction.
type OrExpr struct {
	Left  Expr
	Right Expr
}

// String implements [fmt.Stringer].
func (e *OrExpr) String() string {
	return binaryString(e.Left, " | ", e.Right)
}

// NotExpr negates X.
type NotExpr struct {
	X Expr
}

// String implements [fmt.Stringer].
func (e *NotExpr) String() string {
	return "!" + e.X.String()
}

// LiteralExpr matches lines containing Value.
//
// Value is never empty.
type LiteralExpr struct {
	Value string
}

// String implements [fmt.Stringer].
func (e *LiteralExpr) String() string {
	return e.Value
}

func binaryString(left Expr, op string, right Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(left.String())
	sb.WriteString(op)
	sb.WriteString(right.String())
	sb.WriteByte(')')
	return sb.String()
}

// Walk calls fn for every node of the tree, parents first.
//
// If fn returns false, children of the node are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch e := e.(type) {
	case *AndExpr:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case *OrExpr:
		Walk(e.Left, fn)
		Walk(e.Right, fn)
	case *NotExpr:
		Walk(e.X, fn)
	}
}

// Literals returns all literal values of the tree in query order.
func Literals(e Expr) (r []string) {
	Walk(e, func(e Expr) bool {
		if lit, ok := e.(*LiteralExpr); ok {
			r = append(r, lit.Value)
		}
		return true
	})
	return r
}
