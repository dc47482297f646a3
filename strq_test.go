package strq_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"deedles.dev/strq"
	"github.com/stretchr/testify/require"
)

func TestInsertRemove(t *testing.T) {
	q := strq.New()
	require.NotNil(t, q)
	defer q.Free()

	require.True(t, q.InsertHead("a"))
	v, ok := q.RemoveHead()
	require.True(t, ok)
	require.Equal(t, "a", v)
	require.Zero(t, q.Size())
	require.NoError(t, q.Check())

	require.True(t, q.InsertTail(""))
	require.True(t, q.InsertHead("first"))
	require.True(t, q.InsertTail("last"))
	require.Equal(t, []string{"first", "", "last"}, slices.Collect(q.Values()))
	require.NoError(t, q.Check())
}

func TestRemoveEmpty(t *testing.T) {
	q := strq.New()
	defer q.Free()

	_, ok := q.RemoveHead()
	require.False(t, ok)
	require.False(t, q.RemoveHeadInto(make([]byte, 8)))
	require.Zero(t, q.Size())
}

func TestRemoveLast(t *testing.T) {
	q := strq.New()
	defer q.Free()

	q.InsertTail("x")
	q.RemoveHead()
	require.NoError(t, q.Check())

	q.InsertTail("y")
	q.InsertTail("z")
	require.Equal(t, []string{"y", "z"}, slices.Collect(q.Values()))
	require.NoError(t, q.Check())
}

func TestRemoveHeadInto(t *testing.T) {
	tests := []struct {
		name string
		val  string
		size int
		want string
	}{
		{"Fits", "abc", 8, "abc\x00\x00\x00\x00\x00"},
		{"Exact", "abc", 4, "abc\x00"},
		{"Truncated", "abcdef", 4, "abc\x00"},
		{"OneByte", "x", 1, "\x00"},
		{"Empty", "", 2, "\x00\x00"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			q := strq.New()
			defer q.Free()
			q.InsertTail(test.val)

			buf := bytes.Repeat([]byte{0xFF}, test.size)
			require.True(t, q.RemoveHeadInto(buf))
			require.Equal(t, test.want, string(buf))
			require.Zero(t, q.Size())
		})
	}

	q := strq.New()
	defer q.Free()
	q.InsertTail("discard")
	require.True(t, q.RemoveHeadInto(nil))
	require.Zero(t, q.Size())
}

func TestInsertCopies(t *testing.T) {
	q := strq.New()
	defer q.Free()

	buf := []byte("mutable")
	q.InsertTail(string(buf))
	copy(buf, "changed")

	v, _ := q.RemoveHead()
	require.Equal(t, "mutable", v)
}

func TestReverse(t *testing.T) {
	q := strq.New()
	defer q.Free()

	q.InsertHead("a")
	q.InsertHead("b")
	require.Equal(t, []string{"b", "a"}, slices.Collect(q.Values()))
	require.Equal(t, 2, q.Size())

	q.Reverse()
	require.Equal(t, []string{"a", "b"}, slices.Collect(q.Values()))
	require.Equal(t, 2, q.Size())
	require.NoError(t, q.Check())

	q.InsertTail("c")
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.Values()))

	q.Reverse()
	q.Reverse()
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(q.Values()))
}

func TestSort(t *testing.T) {
	q := strq.New()
	defer q.Free()

	q.InsertTail("banana")
	q.InsertTail("Apple")
	q.InsertTail("cherry")
	q.Sort()
	require.Equal(t, []string{"Apple", "banana", "cherry"}, slices.Collect(q.Values()))
	require.NoError(t, q.Check())

	q.InsertTail("aardvark")
	require.Equal(t, "aardvark", slices.Collect(q.Values())[3])
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	alphabet := "aAbBcCdD"

	q := strq.New()
	defer q.Free()

	var vals []string
	for range 2000 {
		s := make([]byte, r.IntN(5))
		for i := range s {
			s[i] = alphabet[r.IntN(len(alphabet))]
		}
		vals = append(vals, string(s))
		q.InsertTail(string(s))
	}

	q.Sort()
	got := slices.Collect(q.Values())
	require.Len(t, got, len(vals))
	for i := 1; i < len(got); i++ {
		require.LessOrEqual(t, strq.CompareFold(got[i-1], got[i]), 0, "%q before %q", got[i-1], got[i])
	}

	slices.Sort(vals)
	slices.Sort(got)
	require.Equal(t, vals, got)
	require.NoError(t, q.Check())
}

func TestOperationsMatchModel(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	q := strq.New()
	defer q.Free()

	var model []string
	for i := range 5000 {
		v := strconv.Itoa(i)
		switch r.IntN(6) {
		case 0:
			require.True(t, q.InsertHead(v))
			model = slices.Insert(model, 0, v)
		case 1:
			require.True(t, q.InsertTail(v))
			model = append(model, v)
		case 2, 3:
			got, ok := q.RemoveHead()
			require.Equal(t, len(model) > 0, ok)
			if ok {
				require.Equal(t, model[0], got)
				model = model[1:]
			}
		case 4:
			q.Reverse()
			slices.Reverse(model)
		case 5:
			if r.IntN(20) == 0 {
				q.Sort()
				slices.SortFunc(model, strq.CompareFold)
			}
		}

		require.Equal(t, len(model), q.Size())
	}

	require.Equal(t, model, slices.Collect(q.Values()))
	require.NoError(t, q.Check())
}

func TestAbsentQueue(t *testing.T) {
	var q *strq.Queue
	require.False(t, q.InsertHead("a"))
	require.False(t, q.InsertTail("a"))
	_, ok := q.RemoveHead()
	require.False(t, ok)
	require.False(t, q.RemoveHeadInto(make([]byte, 4)))
	require.Zero(t, q.Size())
	require.Empty(t, slices.Collect(q.Values()))
	require.NoError(t, q.Check())
	q.Reverse()
	q.Sort()
	q.Free()
}

func TestFreed(t *testing.T) {
	var m strq.Meter
	q := strq.New(strq.WithAllocator(&m))
	q.InsertTail("a")
	q.Free()
	q.Free()

	require.False(t, q.InsertTail("b"))
	require.Zero(t, q.Size())
	require.Zero(t, m.Blocks())
}
