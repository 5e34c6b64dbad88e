package aatree_test

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/aatree"
)

func TestIterLowerBound(t *testing.T) {
	const n = 100 // keys 0, 10, ... 990
	var (
		r    = rand.New(rand.NewPCG(7, 8))
		tree = newTree()
	)
	items := make([]*Item, n)
	for i := range n {
		items[i] = &Item{Value: i * 10}
	}
	r.Shuffle(n, func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	for _, item := range items {
		require.Nil(t, tree.Insert(item))
	}
	require.NoError(t, tree.Check())

	for p := -9; p < n*10; p++ {
		it := tree.Iter(probe(p))
		switch {
		case p < 0:
			require.Equal(t, 0, it.Value, "probe %d", p)
		case p > (n-1)*10:
			require.Nil(t, it, "probe %d", p)
		default:
			require.NotNil(t, it, "probe %d", p)
			want := p
			if p%10 != 0 {
				want = p/10*10 + 10
			}
			require.Equal(t, want, it.Value, "probe %d", p)
			for next := it.Value + 10; next < n*10; next += 10 {
				it = tree.Next(it)
				require.NotNil(t, it)
				require.Equal(t, next, it.Value)
			}
			require.Nil(t, tree.Next(it))
		}
	}
}

func TestNextPrevWalk(t *testing.T) {
	const n = 100
	var (
		r    = rand.New(rand.NewPCG(9, 10))
		tree = newTree()
	)
	values := r.Perm(n)
	for _, v := range values {
		tree.Insert(&Item{Value: v})
	}

	it := tree.First()
	require.Equal(t, 0, it.Value)
	for i := 1; i < n; i++ {
		it = tree.Next(it)
		require.Equal(t, i, it.Value)
	}
	require.Nil(t, tree.Next(it))

	it = tree.Last()
	require.Equal(t, n-1, it.Value)
	for i := n - 2; i >= 0; i-- {
		it = tree.Prev(it)
		require.Equal(t, i, it.Value)
	}
	require.Nil(t, tree.Prev(it))
}

func TestNextPrevRoundTrip(t *testing.T) {
	tree := newTree()
	for _, v := range []int{10, 20, 30, 40, 50} {
		tree.Insert(&Item{Value: v})
	}

	for it := tree.First(); tree.Next(it) != nil; it = tree.Next(it) {
		next := tree.Next(it)
		assert.Equal(t, next, tree.Next(tree.Prev(next)))
	}
}

func TestFirstLastEmpty(t *testing.T) {
	tree := newTree()
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())
	assert.Nil(t, tree.Iter(probe(0)))
	assert.Nil(t, tree.Next(nil))
	assert.Nil(t, tree.Prev(nil))
}

func TestFindRel(t *testing.T) {
	tree := newTree()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(&Item{Value: v})
	}

	tests := []struct {
		name     string
		probe    int
		relation aatree.Relation
		want     int // 0 means nil
	}{
		{"eq hit", 20, aatree.Eq, 20},
		{"eq miss", 25, aatree.Eq, 0},
		{"lt skips match", 20, aatree.Lt, 10},
		{"lt between", 25, aatree.Lt, 20},
		{"lt below all", 10, aatree.Lt, 0},
		{"le takes match", 20, aatree.Le, 20},
		{"le between", 25, aatree.Le, 20},
		{"le below all", 5, aatree.Le, 0},
		{"gt skips match", 20, aatree.Gt, 30},
		{"gt between", 25, aatree.Gt, 30},
		{"gt above all", 30, aatree.Gt, 0},
		{"ge takes match", 20, aatree.Ge, 20},
		{"ge between", 25, aatree.Ge, 30},
		{"ge above all", 35, aatree.Ge, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.FindRel(probe(tt.probe), tt.relation)
			if tt.want == 0 {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, tt.want, got.Value)
			}
		})
	}
}

func TestFindRelNilProbe(t *testing.T) {
	tree := newTree()
	for _, v := range []int{10, 20, 30} {
		tree.Insert(&Item{Value: v})
	}

	assert.Equal(t, 30, tree.FindRel(nil, aatree.Lt).Value)
	assert.Equal(t, 30, tree.FindRel(nil, aatree.Le).Value)
	assert.Equal(t, 10, tree.FindRel(nil, aatree.Gt).Value)
	assert.Equal(t, 10, tree.FindRel(nil, aatree.Ge).Value)
	assert.Nil(t, tree.FindRel(nil, aatree.Eq))
}

func TestWriteDot(t *testing.T) {
	tree := newTree()
	for _, v := range []int{1, 2, 3} {
		tree.Insert(&Item{Value: v})
	}

	var buf bytes.Buffer
	require.NoError(t, tree.WriteDot(&buf))

	want := `digraph aa_tree {
node [shape = record];
node1 [label = "<f0> | <f1> 2:2|<f2> "];
node2 [label = "<f0> | <f1> 1:1|<f2> "];
"node1":f0 -> "node2":f1;
node3 [label = "<f0> | <f1> 3:1|<f2> "];
"node1":f2 -> "node3":f1;
}
`
	assert.Equal(t, want, buf.String())
}
