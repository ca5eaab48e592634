package listing

import (
	"time"

	. "gopkg.in/check.v1"

	"github.com/sdcoffey/atlas/checkers"
	"github.com/sdcoffey/atlas/listing"
)

func (suite *ListingTestSuite) TestList_hiddenEntriesFollowShowHidden(t *C) {
	names, _, err := listing.List(suite.tree, "", listing.Options{})
	t.Check(err, IsNil)
	t.Check(names, Not(checkers.Contains), ".gitignore")

	names, _, err = listing.List(suite.tree, "", listing.Options{ShowHidden: true})
	t.Check(err, IsNil)
	t.Check(names, checkers.Contains, ".gitignore")
}

func (suite *ListingTestSuite) TestList_unknownPathMessage(t *C) {
	names, _, err := listing.List(suite.tree, "proust", listing.Options{})
	t.Check(names, HasLen, 0)
	t.Check(err, NotNil)
	t.Check(err.Error(), checkers.Contains, "cannot access 'proust'")
}

func (suite *ListingTestSuite) TestList_invalidFilterMessage(t *C) {
	names, _, err := listing.List(suite.tree, "", listing.Options{FilterBy: "folder"})
	t.Check(names, HasLen, 0)
	t.Check(err, NotNil)
	t.Check(err.Error(), checkers.Contains, "not a valid filter criteria")
}

func (suite *ListingTestSuite) TestList_timeSortAscends(t *C) {
	entries, err := listing.Entries(suite.tree.RootNode, listing.Options{SortByTime: true})
	t.Check(err, IsNil)
	t.Check(entryTimes(entries), checkers.Ascending)
}

func (suite *ListingTestSuite) TestList_timeSortThenReverseDescends(t *C) {
	entries, err := listing.Entries(suite.tree.RootNode, listing.Options{SortByTime: true, Reverse: true})
	t.Check(err, IsNil)

	times := entryTimes(entries)
	reversed := make([]time.Time, len(times))
	for idx, stamp := range times {
		reversed[len(times)-1-idx] = stamp
	}
	t.Check(reversed, checkers.Ascending)
}

func (suite *ListingTestSuite) TestList_filtersAreExclusive(t *C) {
	files, err := listing.Select(suite.tree.RootNode, listing.Options{FilterBy: listing.FilterFiles})
	t.Check(err, IsNil)
	directories, err := listing.Select(suite.tree.RootNode, listing.Options{FilterBy: listing.FilterDirectories})
	t.Check(err, IsNil)

	for _, node := range files {
		t.Check(node.IsDir(), Equals, false)
	}
	for _, node := range directories {
		t.Check(node.IsDir(), checkers.IsTrue)
	}
}

func entryTimes(entries []listing.Entry) []time.Time {
	times := make([]time.Time, len(entries))
	for idx, entry := range entries {
		times[idx] = entry.MTime
	}

	return times
}
