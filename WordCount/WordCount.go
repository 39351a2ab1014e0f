// Package WordCount counts word frequencies of a text in a Trees.Dict and
// ranks them.
package WordCount

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/g-m-twostay/go-dicts/Trees"
)

// Options of Count.
type Options struct {
	// Lowercase folds every word to lower case before counting.
	Lowercase bool
	// Balanced counts in an AVL dictionary instead of a plain one.
	Balanced bool
}

// Words are separated by white space; leading and trailing characters that
// are neither letters nor digits are trimmed, and what remains empty is skipped.
func word(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Count the words read from r. For every word it looks up the current count
// and inserts count+1. Returns the dictionary built so far together with the
// first read error.
func Count(r io.Reader, opts Options) (*Trees.Dict[string, uint], error) {
	d := Trees.New[string, uint]()
	if opts.Balanced {
		d = Trees.NewAVL[string, uint]()
	}
	return d, Add(d, r, opts.Lowercase)
}

// Add the words read from r to the counts in d.
func Add(d *Trees.Dict[string, uint], r io.Reader, lowercase bool) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := word(sc.Text())
		if w == "" {
			continue
		}
		if lowercase {
			w = strings.ToLower(w)
		}
		c, _ := d.Get(w)
		d.Insert(w, c+1)
	}
	return sc.Err()
}

// byCount orders pairs by descending count, then ascending word, so that a
// binaryheap (a min-heap) pops the most frequent word first.
func byCount(a, b interface{}) int {
	pa, pb := a.(Trees.Pair[string, uint]), b.(Trees.Pair[string, uint])
	switch {
	case pa.Value > pb.Value:
		return -1
	case pa.Value < pb.Value:
		return 1
	case pa.Key < pb.Key:
		return -1
	case pa.Key > pb.Key:
		return 1
	}
	return 0
}

// Rank drains d with an in-order walk into a max-heap on counts and pops the
// n most frequent words. n<=0 or n>=d.Size() returns every word.
// d isn't modified.
// Time: O(s*log s) where s=d.Size()
func Rank(d *Trees.Dict[string, uint], n int) []Trees.Pair[string, uint] {
	h := binaryheap.NewWith(byCount)
	for it := d.InOrder(); it.HasNext(); {
		p, _ := it.Next()
		h.Push(p)
	}
	if n <= 0 || n > h.Size() {
		n = h.Size()
	}
	ranked := make([]Trees.Pair[string, uint], 0, n)
	for len(ranked) < n {
		v, ok := h.Pop()
		if !ok {
			break
		}
		ranked = append(ranked, v.(Trees.Pair[string, uint]))
	}
	return ranked
}
