// Copyright 2026 Michael Grady.

/*
Package comb is a parser combinator library over arbitrary token streams.
The tokens can be runes, lexer tokens, or any other value type; the engine
only sees them through a small Cursor interface.

# Basics

First, construct the parser by using the combinator functions to describe the
grammar. For example, the simple grammar

	the (big* | small) dog

over a stream of words looks like

	type C = comb.SliceCursor[string]

	p := comb.And(
		comb.Eq[C]("the"),
		comb.Or(
			comb.Do(
				comb.Repeat(comb.Eq[C]("big")),
				func(bigs []string) string { return strings.Join(bigs, " ") }),
			comb.Eq[C]("small")),
		comb.Eq[C]("dog"))

To parse a stream, call Parse with a cursor at its start:

	val, err := p.Parse(comb.NewSliceCursor(strings.Fields("the big big dog")))

The value of this parse is the slice of matched words.

# Results

A Parser is a function from a cursor to a Result, which is either a success
carrying a value and the next cursor, or a bare failure. Invoking the parser
function directly is the way to run it against the middle of a stream or to
observe the stopping position; the Parse method additionally insists that the
whole stream be consumed.

Sequencing combinators come in two flavors. And takes any number of parsers
with the same value type and produces the slice of their values. And2, And3
and And4 take parsers of distinct value types together with a function that
receives every component as its own argument and builds the combined value,
so the shape of every rule's result is declared by the grammar author rather
than inferred.

Transforms also come in two flavors, chosen explicitly: Do applies a function
that always produces a value, while TryDo applies a function that can report
absence, failing the parse. Because absence is reported out of band, a parser
whose value happens to be a pointer or a slice is never mistaken for a failed
transform.

# Purity

Parsers never mutate the stream or the cursors they are given; backtracking
reuses an earlier cursor value. A constructed parser may therefore be used
from multiple goroutines at once, over one stream or several, without
synchronization.
*/
package comb

import (
	"github.com/pkg/errors"
)

// A Result is the outcome of applying a parser at a cursor: either a success
// carrying the parsed value and the cursor after it, or a failure carrying
// nothing.
type Result[C, V any] struct {
	OK    bool
	Value V // valid only when OK
	Next  C // valid only when OK
}

// Success returns a successful result with the given value, leaving the
// parse positioned at next.
func Success[C, V any](v V, next C) Result[C, V] {
	return Result[C, V]{OK: true, Value: v, Next: next}
}

// Failure returns a failed result.
func Failure[C, V any]() Result[C, V] {
	return Result[C, V]{}
}

// A Parser is a function that takes a cursor into a stream of T tokens,
// tries to consume some of them, and returns a value of type V.
type Parser[C Cursor[C, T], T, V any] func(C) Result[C, V]

// Parse applies p at c and requires it to consume the entire stream.
func (p Parser[C, T, V]) Parse(c C) (z V, _ error) {
	r := p(c)
	if !r.OK {
		return z, errors.New("parse failed")
	}
	if !r.Next.AtEnd() {
		return z, errors.Errorf("unconsumed input starting at %v", r.Next.Token())
	}
	return r.Value, nil
}

// Succeed returns a parser that consumes nothing and always succeeds
// with the value v.
func Succeed[C Cursor[C, T], T, V any](v V) Parser[C, T, V] {
	return func(c C) Result[C, V] { return Success(v, c) }
}

// Fail returns a parser that always fails.
func Fail[C Cursor[C, T], T, V any]() Parser[C, T, V] {
	return func(C) Result[C, V] { return Failure[C, V]() }
}

// Any matches any single token. It fails at the end of the stream.
func Any[C Cursor[C, T], T any]() Parser[C, T, T] {
	return func(c C) Result[C, T] {
		if c.AtEnd() {
			return Failure[C, T]()
		}
		return Success(c.Token(), c.Next())
	}
}

// Is matches a single token for which pred returns true.
func Is[C Cursor[C, T], T any](pred func(T) bool) Parser[C, T, T] {
	return func(c C) Result[C, T] {
		if c.AtEnd() || !pred(c.Token()) {
			return Failure[C, T]()
		}
		return Success(c.Token(), c.Next())
	}
}

// Eq matches the given token exactly.
func Eq[C Cursor[C, T], T comparable](tok T) Parser[C, T, T] {
	return func(c C) Result[C, T] {
		if c.AtEnd() || c.Token() != tok {
			return Failure[C, T]()
		}
		return Success(c.Token(), c.Next())
	}
}

// And returns a parser that invokes its argument parsers in succession,
// each starting where the previous one stopped, and fails as soon as one
// of them fails. Its value is the slice of the argument parsers' values.
//
// For sequences whose components have different value types, use And2,
// And3 or And4.
func And[C Cursor[C, T], T, V any](parsers ...Parser[C, T, V]) Parser[C, T, []V] {
	if len(parsers) == 0 {
		panic("And requires at least one parser")
	}
	return func(c C) Result[C, []V] {
		vals := make([]V, 0, len(parsers))
		for _, p := range parsers {
			r := p(c)
			if !r.OK {
				return Failure[C, []V]()
			}
			vals = append(vals, r.Value)
			c = r.Next
		}
		return Success(vals, c)
	}
}

// And2 returns a parser that invokes p1 then p2 and, if both succeed,
// combines their values with f.
func And2[C Cursor[C, T], T, V1, V2, R any](p1 Parser[C, T, V1], p2 Parser[C, T, V2], f func(V1, V2) R) Parser[C, T, R] {
	return func(c C) Result[C, R] {
		return apply2(c, p1, p2, func(c C, v1 V1, v2 V2) Result[C, R] {
			return Success(f(v1, v2), c)
		})
	}
}

func apply2[C Cursor[C, T], T, V1, V2, R any](c C, p1 Parser[C, T, V1], p2 Parser[C, T, V2], f func(C, V1, V2) Result[C, R]) Result[C, R] {
	r1 := p1(c)
	if !r1.OK {
		return Failure[C, R]()
	}
	r2 := p2(r1.Next)
	if !r2.OK {
		return Failure[C, R]()
	}
	return f(r2.Next, r1.Value, r2.Value)
}

// And3 is And2 for three parsers.
func And3[C Cursor[C, T], T, V1, V2, V3, R any](p1 Parser[C, T, V1], p2 Parser[C, T, V2], p3 Parser[C, T, V3], f func(V1, V2, V3) R) Parser[C, T, R] {
	return func(c C) Result[C, R] {
		return apply2(c, p1, p2, func(c C, v1 V1, v2 V2) Result[C, R] {
			r3 := p3(c)
			if !r3.OK {
				return Failure[C, R]()
			}
			return Success(f(v1, v2, r3.Value), r3.Next)
		})
	}
}

// And4 is And2 for four parsers.
func And4[C Cursor[C, T], T, V1, V2, V3, V4, R any](p1 Parser[C, T, V1], p2 Parser[C, T, V2], p3 Parser[C, T, V3], p4 Parser[C, T, V4], f func(V1, V2, V3, V4) R) Parser[C, T, R] {
	return func(c C) Result[C, R] {
		return apply2(c, p1, p2, func(c C, v1 V1, v2 V2) Result[C, R] {
			return apply2(c, p3, p4, func(c C, v3 V3, v4 V4) Result[C, R] {
				return Success(f(v1, v2, v3, v4), c)
			})
		})
	}
}

// Or tries each of its argument parsers in turn at the same cursor,
// succeeding as soon as the first succeeds and failing if they all fail.
// A failed branch leaves no trace: the next branch starts from the original
// cursor.
func Or[C Cursor[C, T], T, V any](parsers ...Parser[C, T, V]) Parser[C, T, V] {
	if len(parsers) == 0 {
		panic("Or requires at least one parser")
	}
	return func(c C) Result[C, V] {
		for _, p := range parsers {
			if r := p(c); r.OK {
				return r
			}
		}
		return Failure[C, V]()
	}
}

// Optional parses either what p parses, or nothing. It never fails.
// If p succeeds the value points at p's value; otherwise the value is nil
// and no input is consumed.
func Optional[C Cursor[C, T], T, V any](p Parser[C, T, V]) Parser[C, T, *V] {
	return func(c C) Result[C, *V] {
		if r := p(c); r.OK {
			v := r.Value
			return Success(&v, r.Next)
		}
		return Success[C, *V](nil, c)
	}
}

// Repeat applies p repeatedly until it fails, collecting the values in
// order. It never fails: zero matches yield an empty value and consume
// nothing, and the attempt that failed consumes nothing either.
//
// If p can succeed without consuming input, Repeat never returns.
func Repeat[C Cursor[C, T], T, V any](p Parser[C, T, V]) Parser[C, T, []V] {
	return func(c C) Result[C, []V] {
		var vals []V
		for {
			r := p(c)
			if !r.OK {
				return Success(vals, c)
			}
			vals = append(vals, r.Value)
			c = r.Next
		}
	}
}

// Repeat1 is like Repeat, but p must succeed at least once.
func Repeat1[C Cursor[C, T], T, V any](p Parser[C, T, V]) Parser[C, T, []V] {
	return And2(p, Repeat(p), func(v V, vs []V) []V {
		return append([]V{v}, vs...)
	})
}

// List returns a parser that parses a non-empty list of items separated by
// sep. The parser returns a slice of the items' values, ignoring the seps'
// values.
func List[C Cursor[C, T], T, V, S any](item Parser[C, T, V], sep Parser[C, T, S]) Parser[C, T, []V] {
	return And2(
		item,
		Repeat(And2(sep, item, func(_ S, v V) V { return v })),
		func(v V, vs []V) []V {
			return append([]V{v}, vs...)
		})
}

// Do returns a parser that parses some tokens using p. If p succeeds, then f
// is called with the value of p and its return value is the value of Do.
func Do[C Cursor[C, T], T, V, U any](p Parser[C, T, V], f func(V) U) Parser[C, T, U] {
	return TryDo(p, func(v V) (U, bool) { return f(v), true })
}

// TryDo is like Do, but the function also reports whether it produced a
// value. If it reports false, TryDo fails and consumes nothing.
func TryDo[C Cursor[C, T], T, V, U any](p Parser[C, T, V], f func(V) (U, bool)) Parser[C, T, U] {
	return func(c C) Result[C, U] {
		r := p(c)
		if !r.OK {
			return Failure[C, U]()
		}
		u, ok := f(r.Value)
		if !ok {
			return Failure[C, U]()
		}
		return Success(u, r.Next)
	}
}

// Filter returns a parser with the same value as p, but which fails
// when pred rejects that value.
func Filter[C Cursor[C, T], T, V any](p Parser[C, T, V], pred func(V) bool) Parser[C, T, V] {
	return TryDo(p, func(v V) (V, bool) { return v, pred(v) })
}

// Select returns a parser whose value holds the given components of p's
// value, in the given order. Indices may repeat and reorder components, and
// must be within the arity of the sequence p was built from.
func Select[C Cursor[C, T], T, V any](p Parser[C, T, []V], indices ...int) Parser[C, T, []V] {
	for _, i := range indices {
		if i < 0 {
			panic("Select index must be non-negative")
		}
	}
	return Do(p, func(vs []V) []V {
		out := make([]V, len(indices))
		for j, i := range indices {
			out[j] = vs[i]
		}
		return out
	})
}

// Pick returns a parser whose value is the i'th component of p's value.
func Pick[C Cursor[C, T], T, V any](p Parser[C, T, []V], i int) Parser[C, T, V] {
	if i < 0 {
		panic("Pick index must be non-negative")
	}
	return Do(p, func(vs []V) V { return vs[i] })
}

// Ptr returns a parser that invokes *p.
// It is useful for creating recursive parsers.
// See the calculator test for a typical use.
func Ptr[C Cursor[C, T], T, V any](p *Parser[C, T, V]) Parser[C, T, V] {
	return func(c C) Result[C, V] {
		return (*p)(c)
	}
}
