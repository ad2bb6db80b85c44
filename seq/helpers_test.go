package seq

import "iter"

// counted yields 1..n and records how many elements were pulled.
func counted(n int, pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i <= n; i++ {
			*pulled++
			if !yield(i) {
				return
			}
		}
	}
}

// naturals yields 1, 2, 3, ... without end.
func naturals(pulled *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; ; i++ {
			if pulled != nil {
				*pulled++
			}
			if !yield(i) {
				return
			}
		}
	}
}

// once yields items from a shared cursor, so a second traversal sees only
// what the first one left behind.
func once[T any](items ...T) iter.Seq[T] {
	pos := 0
	return func(yield func(T) bool) {
		for pos < len(items) {
			item := items[pos]
			pos++
			if !yield(item) {
				return
			}
		}
	}
}

type person struct {
	name string
	age  int
}

var people = []person{
	{"amy", 21},
	{"bob", 2},
	{"cat", 18},
	{"dot", 39},
}
