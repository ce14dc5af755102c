package util

import "iter"

func SeqAt[T any](seq iter.Seq[T], idx int) (out T, exists bool) {
	var i int
	for item := range seq {
		if i == idx {
			return item, true
		}
		i++
	}
	return out, false
}

// SeqTake collects at most n items from seq.
func SeqTake[T any](seq iter.Seq[T], n int) (out []T) {
	if n <= 0 {
		return nil
	}
	for item := range seq {
		out = append(out, item)
		if len(out) == n {
			break
		}
	}
	return out
}
