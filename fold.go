// Copyright 2026 Michael Grady.

package comb

// Foldl returns a function that reduces a slice from the left:
// starting from an initial value, it computes op(...op(op(init, e1), e2)...).
// Its shape matches the combining function of And2, so a left-associative
// rule like
//
//	expr = term (op term)*
//
// is written And2(term, Repeat(rest), Foldl(apply)).
func Foldl[A, E any](op func(A, E) A) func(A, []E) A {
	return func(acc A, elems []E) A {
		for _, e := range elems {
			acc = op(acc, e)
		}
		return acc
	}
}

// Foldr is like Foldl but reduces from the right, computing
// op(e1, op(e2, ...op(en, init)...)), with the initial value as the second
// argument to match an And2 whose repetition comes first.
func Foldr[E, A any](op func(E, A) A) func([]E, A) A {
	return func(elems []E, acc A) A {
		for i := len(elems) - 1; i >= 0; i-- {
			acc = op(elems[i], acc)
		}
		return acc
	}
}
