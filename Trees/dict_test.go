package Trees

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

var (
	fruits = []string{"donut", "banana", "garlic", "apple", "carrot", "egg", "kiwi"}
	counts = []int{4, 1, 5, 2, 6, 0, 3}
)

// keys drains it, failing the test if an element can't be read.
func keys[K string | int, V any](t *testing.T, it Iterator[K, V]) []K {
	t.Helper()
	var s []K
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			t.Fatalf("Next failed while HasNext: %v", err)
		}
		s = append(s, p.Key)
	}
	return s
}

// both runs f against a plain and an AVL dictionary.
func both(t *testing.T, f func(*testing.T, *Dict[int, int])) {
	t.Run("plain", func(t *testing.T) { f(t, New[int, int]()) })
	t.Run("avl", func(t *testing.T) { f(t, NewAVL[int, int]()) })
}

func TestDict_Traversals(t *testing.T) {
	d, err := From(fruits, counts)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		it   Iterator[string, int]
		want []string
	}{
		{"in-order", d.InOrder(), []string{"apple", "banana", "carrot", "donut", "egg", "garlic", "kiwi"}},
		{"reverse", d.ReverseInOrder(), []string{"kiwi", "garlic", "egg", "donut", "carrot", "banana", "apple"}},
		{"pre-order", d.PreOrder(), []string{"donut", "banana", "apple", "carrot", "garlic", "egg", "kiwi"}},
		{"post-order", d.PostOrder(), []string{"apple", "carrot", "banana", "egg", "kiwi", "garlic", "donut"}},
		{"level-order", d.LevelOrder(), []string{"donut", "banana", "garlic", "apple", "carrot", "egg", "kiwi"}},
	}
	for _, c := range cases {
		if got := keys(t, c.it); !slices.Equal(got, c.want) {
			t.Errorf("%s is %v, want %v", c.name, got, c.want)
		}
		var e *ExhaustedError
		if _, err := c.it.Next(); !errors.As(err, &e) {
			t.Errorf("%s: Next after the end returned %v", c.name, err)
		}
	}
	if v, ok := d.Get("egg"); !ok || v != 0 {
		t.Errorf("egg is %d %v, want 0", v, ok)
	}
}

func TestDict_From(t *testing.T) {
	var e *LengthMismatchError
	if d, err := From([]int{1, 2, 3}, []int{1}); !errors.As(err, &e) || d != nil {
		t.Errorf("From with mismatched lengths returned %v %v", d, err)
	} else if e.Keys != 3 || e.Values != 1 {
		t.Errorf("mismatch is %d, %d, want 3, 1", e.Keys, e.Values)
	}
	if _, err := AVLFrom([]int{}, []int{1}); !errors.As(err, &e) {
		t.Errorf("AVLFrom with mismatched lengths returned %v", err)
	}
	d, err := AVLFrom([]int{}, []string{})
	if err != nil || !d.Empty() || !d.Balanced() {
		t.Errorf("AVLFrom empty slices gave %v %v", d, err)
	}
}

func TestDict_Empty(t *testing.T) {
	both(t, func(t *testing.T, d *Dict[int, int]) {
		if _, ok := d.Minimum(); ok {
			t.Errorf("empty tree has a minimum")
		}
		if _, ok := d.Maximum(); ok {
			t.Errorf("empty tree has a maximum")
		}
		if _, ok := d.Get(0); ok {
			t.Errorf("empty tree has key 0")
		}
		if _, ok := d.Remove(0); ok {
			t.Errorf("empty tree removed key 0")
		}
		if !d.Empty() || d.Size() != 0 || d.Height() != 0 {
			t.Errorf("empty tree size is %d, height %d", d.Size(), d.Height())
		}
		for _, it := range []Iterator[int, int]{d.InOrder(), d.ReverseInOrder(), d.PreOrder(), d.PostOrder(), d.LevelOrder()} {
			if it.HasNext() {
				t.Errorf("iterator on empty tree has next")
			}
			var e *ExhaustedError
			if _, err := it.Next(); !errors.As(err, &e) {
				t.Errorf("Next on empty tree returned %v", err)
			}
		}
		if d.String() != "Tree [0]" {
			t.Errorf("empty tree prints %q", d.String())
		}
	})
}

func TestDict_ZeroValue(t *testing.T) {
	var d Dict[int, string]
	d.Insert(2, "b")
	d.Insert(1, "a")
	if d.Corrupt() || d.Size() != 2 || d.Balanced() {
		t.Errorf("zero value dict is broken: %v", d.String())
	}
}

func TestDict_Duplicate(t *testing.T) {
	both(t, func(t *testing.T, d *Dict[int, int]) {
		for _, k := range []int{5, 3, 8, 1, 4} {
			d.Insert(k, k)
		}
		before := keys(t, d.PreOrder())
		if d.Insert(3, 30) {
			t.Errorf("inserting an existing key reported a new key")
		}
		if v, _ := d.Get(3); v != 30 {
			t.Errorf("value of 3 is %d, want 30", v)
		}
		if d.Size() != 5 {
			t.Errorf("tree size is %d, want 5", d.Size())
		}
		if after := keys(t, d.PreOrder()); !slices.Equal(before, after) {
			t.Errorf("shape changed from %v to %v", before, after)
		}
	})
}

func TestDict_MinMax(t *testing.T) {
	both(t, func(t *testing.T, d *Dict[int, int]) {
		lo, hi := tAddValRange, -1
		for _i := 0; _i < 1000; _i++ {
			k := rg.Intn(tAddValRange)
			d.Insert(k, -k)
			lo, hi = min(lo, k), max(hi, k)
		}
		if p, ok := d.Minimum(); !ok || p.Key != lo || p.Value != -lo {
			t.Errorf("minimum is %v, want %d", p, lo)
		}
		if p, ok := d.Maximum(); !ok || p.Key != hi || p.Value != -hi {
			t.Errorf("maximum is %v, want %d", p, hi)
		}
	})
}

func TestDict_RemoveCases(t *testing.T) {
	d, _ := From(fruits, counts)
	//leaf
	if v, ok := d.Remove("apple"); !ok || v != 2 {
		t.Errorf("remove apple gave %d %v", v, ok)
	}
	//one child
	if v, ok := d.Remove("banana"); !ok || v != 1 {
		t.Errorf("remove banana gave %d %v", v, ok)
	}
	if got := keys(t, d.LevelOrder()); !slices.Equal(got, []string{"donut", "carrot", "garlic", "egg", "kiwi"}) {
		t.Errorf("level-order after removals is %v", got)
	}
	//two children: egg is the successor of donut
	if v, ok := d.Remove("donut"); !ok || v != 4 {
		t.Errorf("remove donut gave %d %v", v, ok)
	}
	if got := keys(t, d.LevelOrder()); !slices.Equal(got, []string{"egg", "carrot", "garlic", "kiwi"}) {
		t.Errorf("level-order after removing the root is %v", got)
	}
	if _, ok := d.Remove("zzz"); ok {
		t.Errorf("removed a non existent key")
	}
	if d.Size() != 4 || d.Has("donut") || d.Corrupt() {
		t.Errorf("tree after removals is %v", d)
	}
	if d.String() != "Tree [4]: (carrot: 6), (egg: 0), (garlic: 5), (kiwi: 3)" {
		t.Errorf("tree prints %q", d.String())
	}
}

func TestDict_AddDel(t *testing.T) {
	both(t, func(t *testing.T, d *Dict[int, int]) {
		content := make(map[int]int)
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
		}
		for i, b := range a {
			_, in := content[b]
			if d.Insert(b, i) == in {
				t.Errorf("insert of key %v reported %v", b, !in)
			}
			content[b] = i
		}
		if int(d.Size()) != len(content) {
			t.Errorf("tree size is %d, want %d", d.Size(), len(content))
		}
		for i, n := 0, rg.Intn(len(a)); i < n; i++ {
			want, in := content[a[i]]
			if v, ok := d.Remove(a[i]); ok != in || v != want {
				t.Errorf("failed to delete key %v", a[i])
			}
			if _, ok := d.Remove(a[i]); ok {
				t.Errorf("can delete a second time key %v", a[i])
			}
			if d.Has(a[i]) {
				t.Errorf("tree still has key %v", a[i])
			}
			delete(content, a[i])
		}
		if int(d.Size()) != len(content) {
			t.Errorf("tree size is %d, want %d", d.Size(), len(content))
		}
		if d.Corrupt() {
			t.Errorf("tree is corrupt")
		}
		for k, v := range content {
			if got, ok := d.Get(k); !ok || got != v {
				t.Errorf("tree has %d %v for key %v, want %d", got, ok, k, v)
			}
		}
		s := keys(t, d.InOrder())
		if len(s) != len(content) || !slices.IsSorted(s) {
			t.Errorf("in-order has %d keys, sorted: %v", len(s), slices.IsSorted(s))
		}
		r := keys(t, d.ReverseInOrder())
		if slices.Reverse(r); !slices.Equal(r, s) {
			t.Errorf("reverse in-order isn't the reverse of in-order")
		}
		t.Logf("height: %d, size: %d.\n", d.Height(), d.Size())
	})
}

// every traversal visits every key exactly once.
func TestDict_TraversalsComplete(t *testing.T) {
	both(t, func(t *testing.T, d *Dict[int, int]) {
		for _i := 0; _i < 3000; _i++ {
			d.Insert(rg.Intn(tAddValRange), 0)
		}
		want := keys(t, d.InOrder())
		for _, it := range []Iterator[int, int]{d.PreOrder(), d.PostOrder(), d.LevelOrder()} {
			got := keys(t, it)
			slices.Sort(got)
			if !slices.Equal(got, want) {
				t.Errorf("traversal has %d keys, want %d", len(got), len(want))
			}
		}
		//root is first in pre and level order and last in post order.
		root := d.root.p.Key
		if p, _ := d.PreOrder().Next(); p.Key != root {
			t.Errorf("pre-order starts with %d, want %d", p.Key, root)
		}
		if p, _ := d.LevelOrder().Next(); p.Key != root {
			t.Errorf("level-order starts with %d, want %d", p.Key, root)
		}
		if post := keys(t, d.PostOrder()); post[len(post)-1] != root {
			t.Errorf("post-order ends with %d, want %d", post[len(post)-1], root)
		}
	})
}

func TestDict_Range(t *testing.T) {
	d, _ := AVLFrom(fruits, counts)
	var s []string
	d.Range(func(k string, v int) bool {
		s = append(s, k)
		return len(s) < 3
	})
	if !slices.Equal(s, []string{"apple", "banana", "carrot"}) {
		t.Errorf("Range visited %v", s)
	}
	d.Clear()
	if !d.Empty() || d.Has("apple") {
		t.Errorf("tree not empty after Clear")
	}
}

func TestDict_Corrupt(t *testing.T) {
	d := New[int, int]()
	for _, k := range []int{2, 1, 3} {
		d.Insert(k, k)
	}
	if d.Corrupt() {
		t.Fatalf("valid tree reported corrupt")
	}
	d.root.l.p.Key = 5
	if !d.Corrupt() {
		t.Errorf("out of order key not detected")
	}
	d.root.l.p.Key = 1
	d.root.h = 7
	if !d.Corrupt() {
		t.Errorf("wrong height not detected")
	}
	d.root.h = 2
	d.count = 4
	if !d.Corrupt() {
		t.Errorf("wrong size not detected")
	}
}

func TestPair_String(t *testing.T) {
	if s := (Pair[string, int]{"a", 1}).String(); s != "(a: 1)" {
		t.Errorf("pair prints %q", s)
	}
}
