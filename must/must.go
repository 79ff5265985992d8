// Package must unwraps (value, error) results in commands, where an
// error can only mean a bug or bad input and there is nothing better
// to do than stop.
package must

// Must2 returns p1, or panics with err if it is not nil.
//
//	root := must.Must2(tree.FromPreAndInOrder(pre, in))
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
