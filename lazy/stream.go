// Package lazy provides a deferred, possibly infinite, purely functional
// sequence.
//
// A Stream is either empty or a cell holding one value and a continuation that
// produces the rest of the stream. Continuations are not memoized: asking for
// the tail twice runs the continuation twice, so every function handed to this
// package must be deterministic and free of side effects.
package lazy

type cell[T any] struct {
	value T
	next  func() Stream[T]
}

// Stream is an immutable lazy sequence. The zero value is the empty stream.
type Stream[T any] struct {
	c *cell[T]
}

func emptyNext[T any]() Stream[T] {
	return Stream[T]{}
}

// Empty returns a stream with no elements.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Single returns a stream holding exactly v.
func Single[T any](v T) Stream[T] {
	return Stream[T]{&cell[T]{value: v, next: emptyNext[T]}}
}

// Cons returns a stream holding v followed by whatever next yields. next is
// only invoked when the tail is requested.
func Cons[T any](v T, next func() Stream[T]) Stream[T] {
	if next == nil {
		next = emptyNext[T]
	}
	return Stream[T]{&cell[T]{value: v, next: next}}
}

// Of returns a finite stream of vs, in order.
func Of[T any](vs ...T) Stream[T] {
	if len(vs) == 0 {
		return Stream[T]{}
	}
	return Cons(vs[0], func() Stream[T] { return Of(vs[1:]...) })
}

// NonEmpty reports whether s has at least one element.
func (s Stream[T]) NonEmpty() bool {
	return s.c != nil
}

// Head returns the first element. It panics on an empty stream.
func (s Stream[T]) Head() T {
	if s.c == nil {
		panic("lazy: Head of empty stream")
	}
	return s.c.value
}

// Tail evaluates the continuation. The tail of an empty stream is empty.
func (s Stream[T]) Tail() Stream[T] {
	if s.c == nil {
		return s
	}
	return s.c.next()
}

// Pop returns the head and the evaluated tail. ok is false iff s is empty.
func (s Stream[T]) Pop() (head T, tail Stream[T], ok bool) {
	if s.c == nil {
		return head, s, false
	}
	return s.c.value, s.c.next(), true
}

// Concat lazily appends the stream produced by rest. rest is not invoked until
// every element of s has been consumed; if s is empty it is invoked at once.
func (s Stream[T]) Concat(rest func() Stream[T]) Stream[T] {
	if s.c == nil {
		return rest()
	}
	c := s.c
	return Cons(c.value, func() Stream[T] {
		return c.next().Concat(rest)
	})
}

// Append is Concat for a right-hand side that is already a value.
func (s Stream[T]) Append(rest Stream[T]) Stream[T] {
	return s.Concat(func() Stream[T] { return rest })
}

// Map transforms each element with f. The head is transformed eagerly; the
// tail is transformed only as it is consumed.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	if s.c == nil {
		return Stream[U]{}
	}
	c := s.c
	return Cons(f(c.value), func() Stream[U] {
		return Map(c.next(), f)
	})
}

// FlatMap maps every element of s to a stream and flattens the result in
// order.
//
// The search for the first element whose mapped stream is non-empty is strict:
// FlatMap walks s forward, calling f, until it finds one (or s runs out). Only
// the remainder after that point is deferred. Since continuations are not
// memoized, a long run of empty mapped streams is rescanned every time the
// same FlatMap value is rebuilt.
func FlatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	for s.c != nil {
		res := f(s.c.value)
		s = s.c.next()
		if res.c != nil {
			rest := s
			return res.Concat(func() Stream[U] { return FlatMap(rest, f) })
		}
	}
	return Stream[U]{}
}

// Each calls fn on successive elements until fn returns false or the stream
// ends.
func (s Stream[T]) Each(fn func(T) bool) {
	for s.c != nil {
		if !fn(s.c.value) {
			return
		}
		s = s.c.next()
	}
}

// Take returns a stream of at most the first n elements of s.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 || s.c == nil {
		return Stream[T]{}
	}
	c := s.c
	return Cons(c.value, func() Stream[T] {
		if n == 1 {
			return Stream[T]{}
		}
		return c.next().Take(n - 1)
	})
}

// Slice consumes the whole stream into a slice. It never returns for an
// infinite stream.
func (s Stream[T]) Slice() []T {
	var out []T
	s.Each(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Count consumes the whole stream and returns its length.
func (s Stream[T]) Count() int {
	n := 0
	s.Each(func(T) bool {
		n++
		return true
	})
	return n
}
