package txview

import "github.com/leapdao/parent-bridge/cell"

// Query applies load to every index of source, from 0 up to the first
// ErrIndexOutOfBound, and returns all collected results at once. Any other
// error aborts the whole query instead of being silently skipped — the
// Go analogue of ckb_std's QueryIter, which must never hide a malformed
// cell behind a short result.
func Query[T any](a Accessor, source cell.Source, load func(Accessor, cell.Source, int) (T, error)) ([]T, error) {
	var out []T
	for i := 0; ; i++ {
		v, err := load(a, source, i)
		if err == ErrIndexOutOfBound {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// CountMatching counts how many cells from source satisfy pred, stopping
// at the first ErrIndexOutOfBound.
func CountMatching(a Accessor, source cell.Source, pred func(i int) (bool, error)) (int, error) {
	count := 0
	for i := 0; ; i++ {
		ok, err := pred(i)
		if err == ErrIndexOutOfBound {
			return count, nil
		}
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
}
