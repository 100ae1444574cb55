package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	urls []string
	err  error
}

func (s *recordingSink) NavigateTo(url string) error {
	s.urls = append(s.urls, url)
	return s.err
}

func sites() []Entry {
	return []Entry{
		{Label: "Reddit", URL: "https://reddit.com"},
		{Label: "Github", URL: "https://github.com"},
		{Label: "Gitlab", URL: "https://gitlab.com"},
		{Label: "Amazon", URL: "https://amazon.com"},
		{Label: "Youtube", URL: "https://youtube.com"},
	}
}

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		label, query string
		ratio        float64
		want         bool
	}{
		{"Github", "git", 1.0, true},
		{"Github", "GIT", 1.0, true},
		{"Github", "xyz", 1.0, false},
		{"Github", "", 1.0, true},
		{"bar", "bab", 1.0, true},
		{"Github", "bug", 1.0, false},
		{"Github", "hb", 0.3, true},
		{"Github", "hbz", 0.3, false},
		{"", "a", 0, false},
	}
	for _, tc := range cases {
		got := FuzzyMatch(tc.label, tc.query, tc.ratio)
		require.Equal(t, tc.want, got, "FuzzyMatch(%q, %q, %v)", tc.label, tc.query, tc.ratio)
	}
}

func TestLayoutColumns(t *testing.T) {
	l := DefaultLayout()
	require.Equal(t, 1, l.Columns(0))
	require.Equal(t, 1, l.Columns(39))
	require.Equal(t, 3, l.Columns(71))
	require.Equal(t, 5, l.Columns(111))
	require.Equal(t, 1, Layout{ItemWidth: 0}.Columns(200))
}

func TestNew_SortsByLabel(t *testing.T) {
	n := New(sites(), Options{})
	var labels []string
	for _, e := range n.Entries() {
		labels = append(labels, e.Label)
	}
	require.Equal(t, []string{"Amazon", "Github", "Gitlab", "Reddit", "Youtube"}, labels)
}

func TestNavigator_GridWrap(t *testing.T) {
	n := New(sites(), Options{})
	n.Resize(71)
	require.Equal(t, 3, n.Cursor().Columns)

	n.Focus(4)
	n.Move(Right)
	require.Equal(t, 0, n.Cursor().Index)

	n.Move(Left)
	require.Equal(t, 4, n.Cursor().Index)

	n.Focus(1)
	n.Move(Down)
	require.Equal(t, 4, n.Cursor().Index)
	n.Move(Down)
	require.Equal(t, 0, n.Cursor().Index)

	n.Focus(1)
	n.Move(Up)
	require.Equal(t, 4, n.Cursor().Index)
	n.Move(Up)
	require.Equal(t, 1, n.Cursor().Index)
}

func TestNavigator_ResizeChangesColumns(t *testing.T) {
	n := New(sites(), Options{})
	n.Resize(30)
	n.Focus(0)
	n.Move(Down)
	require.Equal(t, 1, n.Cursor().Index)

	n.Resize(111)
	require.Equal(t, 5, n.Cursor().Columns)
	n.Focus(0)
	n.Move(Down)
	require.Equal(t, 0, n.Cursor().Index)
}

func TestNavigator_SetQueryFiltersAndResetsCursor(t *testing.T) {
	n := New(sites(), Options{})
	n.Resize(71)
	n.Focus(3)

	n.SetQuery("git")
	require.Equal(t, "git", n.Query())
	require.Equal(t, 0, n.Cursor().Index)
	visible := n.Visible()
	require.Len(t, visible, 2)
	require.Equal(t, "Github", visible[0].Label)
	require.Equal(t, "Gitlab", visible[1].Label)

	n.SetQuery("")
	require.Len(t, n.Visible(), 5)
}

func TestNavigator_EmptyListIsNoop(t *testing.T) {
	sink := &recordingSink{}
	n := New(nil, Options{Sink: sink})
	n.Move(Right)
	n.Move(Up)
	require.Equal(t, 0, n.Cursor().Index)
	require.False(t, n.Activate())
	require.Empty(t, sink.urls)

	n = New(sites(), Options{Sink: sink})
	n.SetQuery("qqqq")
	require.Empty(t, n.Visible())
	n.Move(Down)
	require.False(t, n.Activate())
	require.Empty(t, sink.urls)
}

func TestNavigator_Activate(t *testing.T) {
	sink := &recordingSink{}
	n := New(sites(), Options{Sink: sink})
	n.Resize(71)
	n.SetQuery("git")
	n.Move(Right)

	require.True(t, n.Activate())
	require.Equal(t, []string{"https://gitlab.com"}, sink.urls)
}

func TestNavigator_ActivateSinkError(t *testing.T) {
	sink := &recordingSink{err: errors.New("no browser")}
	n := New(sites(), Options{Sink: sink})
	require.False(t, n.Activate())
	require.Equal(t, []string{"https://amazon.com"}, sink.urls)
}

func TestSinkFunc(t *testing.T) {
	var got string
	n := New(sites(), Options{Sink: SinkFunc(func(url string) error {
		got = url
		return nil
	})})
	require.True(t, n.Activate())
	require.Equal(t, "https://amazon.com", got)
}

func TestNew_RatioZeroIsLooserThanDefault(t *testing.T) {
	zero := 0.0
	loose := New(sites(), Options{Ratio: &zero})
	loose.SetQuery("hb")
	require.Len(t, loose.Visible(), 1)
	require.Equal(t, "Github", loose.Visible()[0].Label)

	strict := New(sites(), Options{})
	strict.SetQuery("hb")
	require.Empty(t, strict.Visible())
}
