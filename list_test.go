package tasks_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nicolagi/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(contents ...string) *tasks.List {
	var l tasks.List
	for _, c := range contents {
		l.Add(c)
	}
	return &l
}

func contents(l *tasks.List) []string {
	var all []string
	for _, c := range l.All() {
		all = append(all, c)
	}
	return all
}

func TestListAll(t *testing.T) {
	testCases := [][]string{
		nil,
		{"buy milk"},
		{"buy milk", "walk dog"},
		{"same", "same", "same"},
		{"", "after an empty one", ""},
	}
	for _, added := range testCases {
		t.Run("", func(t *testing.T) {
			l := newList(added...)
			var numbers []int
			var got []string
			for n, c := range l.All() {
				numbers = append(numbers, n)
				got = append(got, c)
			}
			if diff := cmp.Diff(added, got); diff != "" {
				t.Errorf("contents mismatch (-want +got):\n%s", diff)
			}
			for i, n := range numbers {
				assert.Equal(t, i+1, n)
			}
			assert.Equal(t, len(added), l.Len())
		})
	}
}

func TestListAllStopsEarly(t *testing.T) {
	l := newList("a", "b", "c")
	var seen []string
	for _, c := range l.All() {
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestListRemove(t *testing.T) {
	testCases := []struct {
		initial []string // list before removal
		n       int      // 1-based number to remove
		removed string   // expected removed content
		after   []string // expected list after removal
	}{
		{
			initial: []string{"buy milk", "walk dog"},
			n:       1,
			removed: "buy milk",
			after:   []string{"walk dog"},
		},
		{
			initial: []string{"a", "b", "c", "d"},
			n:       2,
			removed: "b",
			after:   []string{"a", "c", "d"},
		},
		{
			initial: []string{"a", "b", "c"},
			n:       3,
			removed: "c",
			after:   []string{"a", "b"},
		},
		{
			initial: []string{"only"},
			n:       1,
			removed: "only",
			after:   nil,
		},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			l := newList(tc.initial...)
			removed, err := l.Remove(tc.n)
			require.Nil(t, err)
			assert.Equal(t, tc.removed, removed)
			if diff := cmp.Diff(tc.after, contents(l)); diff != "" {
				t.Errorf("contents mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListRemoveOutOfRange(t *testing.T) {
	testCases := []struct {
		initial []string
		n       int
	}{
		{initial: nil, n: 1},
		{initial: []string{"walk dog"}, n: 5},
		{initial: []string{"walk dog"}, n: 2},
		{initial: []string{"walk dog"}, n: 0},
		{initial: []string{"a", "b"}, n: -1},
	}
	for _, tc := range testCases {
		t.Run("", func(t *testing.T) {
			l := newList(tc.initial...)
			removed, err := l.Remove(tc.n)
			assert.True(t, errors.Is(err, tasks.ErrOutOfRange))
			assert.Equal(t, "", removed)
			if diff := cmp.Diff(tc.initial, contents(l)); diff != "" {
				t.Errorf("list changed (-want +got):\n%s", diff)
			}
		})
	}
}
