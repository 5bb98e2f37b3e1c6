package chafengine

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/chaf/internal/chafql"
)

type (
	andMatcher = AndMatcher[string, StringMatcher]
	orMatcher  = OrMatcher[string, StringMatcher]
	notMatcher = NotMatcher[string, StringMatcher]
)

// Compile builds a StringMatcher from the query tree.
//
// Returned matcher holds no state and is safe for concurrent use.
func Compile(expr chafql.Expr) (StringMatcher, error) {
	switch expr := expr.(type) {
	case *chafql.AndExpr:
		left, right, err := compileBinary(expr.Left, expr.Right)
		if err != nil {
			return nil, err
		}
		return andMatcher{Left: left, Right: right}, nil
	case *chafql.OrExpr:
		left, right, err := compileBinary(expr.Left, expr.Right)
		if err != nil {
			return nil, err
		}
		return orMatcher{Left: left, Right: right}, nil
	case *chafql.NotExpr:
		next, err := Compile(expr.X)
		if err != nil {
			return nil, err
		}
		return notMatcher{Next: next}, nil
	case *chafql.LiteralExpr:
		return ContainsMatcher{Value: expr.Value}, nil
	default:
		return nil, errors.Errorf("unexpected expression %T", expr)
	}
}

func compileBinary(l, r chafql.Expr) (left, right StringMatcher, _ error) {
	left, err := Compile(l)
	if err != nil {
		return nil, nil, errors.Wrap(err, "left")
	}
	right, err = Compile(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "right")
	}
	return left, right, nil
}
