// Copyright 2026 Michael Grady.

package comb

// A Cursor is an immutable position in a token stream. Cursors are values:
// advancing produces a new cursor and never modifies the old one, so a parser
// backtracks simply by reusing an earlier cursor.
//
// The type parameter C is the implementing type itself, which lets Next
// return the concrete cursor type rather than an interface.
type Cursor[C, T any] interface {
	// AtEnd reports whether the cursor is past the last token.
	AtEnd() bool
	// Token returns the token at the cursor's position.
	// It may be called only when AtEnd reports false.
	Token() T
	// Next returns a cursor positioned one token forward.
	// It may be called only when AtEnd reports false.
	Next() C
}

// A SliceCursor is a Cursor over a slice of tokens.
// The zero SliceCursor is an empty stream.
type SliceCursor[T any] struct {
	toks []T
	pos  int
}

// NewSliceCursor returns a cursor at the start of tokens.
// The slice must not be modified while the cursor or any cursor
// derived from it is in use.
func NewSliceCursor[T any](tokens []T) SliceCursor[T] {
	return SliceCursor[T]{toks: tokens}
}

// Runes returns a cursor over the runes of s.
func Runes(s string) SliceCursor[rune] {
	return NewSliceCursor([]rune(s))
}

func (c SliceCursor[T]) AtEnd() bool { return c.pos == len(c.toks) }

func (c SliceCursor[T]) Token() T { return c.toks[c.pos] }

func (c SliceCursor[T]) Next() SliceCursor[T] {
	return SliceCursor[T]{toks: c.toks, pos: c.pos + 1}
}

// Pos returns the cursor's offset from the start of the stream.
func (c SliceCursor[T]) Pos() int { return c.pos }
