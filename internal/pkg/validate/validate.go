// Package validate provides a small fail-fast check combinator: a target
// value, a pass predicate and a failure producer composed into one shape,
// so that every "is this field present" / "does this row already exist"
// check reads the same across services.
package validate

// Chain carries a target value through a sequence of checks. The first
// failed predicate captures its produced error; later checks are skipped.
type Chain[T any] struct {
	target T
	err    error
}

func For[T any](target T) *Chain[T] {
	return &Chain[T]{target: target}
}

// Require evaluates a pure predicate over the target. A false result
// records the error produced by fail.
func (c *Chain[T]) Require(pred func(T) bool, fail func() error) *Chain[T] {
	if c.err != nil {
		return c
	}
	if !pred(c.target) {
		c.err = fail()
	}
	return c
}

// RequireFrom evaluates a predicate that can itself fail, typically one
// backed by a store read. A predicate error short-circuits the chain as-is;
// a false result records the error produced by fail.
func (c *Chain[T]) RequireFrom(pred func(T) (bool, error), fail func() error) *Chain[T] {
	if c.err != nil {
		return c
	}
	ok, err := pred(c.target)
	if err != nil {
		c.err = err
		return c
	}
	if !ok {
		c.err = fail()
	}
	return c
}

// Result returns the target unchanged together with the first recorded error.
func (c *Chain[T]) Result() (T, error) {
	return c.target, c.err
}

// Check is the one-shot form of For().Require().Result().
func Check[T any](target T, pred func(T) bool, fail func() error) (T, error) {
	return For(target).Require(pred, fail).Result()
}
