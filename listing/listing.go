// Package listing filters, orders and formats the children of a resolved
// node. It never touches the graph beyond reading node attributes.
package listing

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sdcoffey/atlas/tree"
)

// Entry is the per-render projection of a node's display-relevant fields.
type Entry struct {
	Name        string
	Permissions string
	Size        int64
	MTime       time.Time
	Dir         bool
}

type InvalidFilterError struct {
	Filter string
}

func (e InvalidFilterError) Error() string {
	return fmt.Sprintf("'%s' is not a valid filter criteria. Available filters are 'dir' and 'file'", e.Filter)
}

func EntryForNode(nd *tree.Node) Entry {
	return Entry{
		Name:        nd.Name(),
		Permissions: nd.Permissions(),
		Size:        nd.Size(),
		MTime:       nd.ModTime(),
		Dir:         nd.IsDir(),
	}
}

// Select applies the hidden-name and type filters, then the optional time
// sort and reversal, to node's children. An unrecognized filter aborts
// before any entry is considered.
func Select(node *tree.Node, opts Options) ([]*tree.Node, error) {
	if opts.FilterBy != "" && opts.FilterBy != FilterFiles && opts.FilterBy != FilterDirectories {
		return nil, InvalidFilterError{opts.FilterBy}
	}

	children := node.Children()
	selected := make([]*tree.Node, 0, len(children))
	for _, child := range children {
		if !opts.ShowHidden && strings.HasPrefix(child.Name(), ".") {
			continue
		}
		if opts.FilterBy == FilterFiles && child.IsDir() {
			continue
		}
		if opts.FilterBy == FilterDirectories && !child.IsDir() {
			continue
		}
		selected = append(selected, child)
	}

	if opts.SortByTime {
		tree.Sort(selected, tree.ByModTime)
	}

	if opts.Reverse {
		for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
			selected[i], selected[j] = selected[j], selected[i]
		}
	}

	return selected, nil
}

// Entries is Select projected onto display entries.
func Entries(node *tree.Node, opts Options) ([]Entry, error) {
	selected, err := Select(node, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(selected))
	for idx, child := range selected {
		entries[idx] = EntryForNode(child)
	}

	return entries, nil
}

// Render formats entries either as a single space-joined name line or,
// when detailed, one line per entry.
func Render(entries []Entry, opts Options) string {
	if !opts.Detailed {
		names := make([]string, len(entries))
		for idx, entry := range entries {
			names[idx] = entry.Name
		}
		return strings.Join(names, " ")
	}

	var report bytes.Buffer
	for idx, entry := range entries {
		if idx > 0 {
			report.WriteString("\n")
		}
		report.WriteString(DetailLine(entry, entry.Name, opts.HumanReadable))
	}

	return report.String()
}

// DetailLine is one row of the long format: padded permissions, an
// 8-column size, the modification time and the display label.
func DetailLine(entry Entry, label string, humanReadable bool) string {
	size := strconv.FormatInt(entry.Size, 10)
	if humanReadable {
		size = HumanReadableSize(entry.Size)
	}

	return fmt.Sprintf("%s %8s %s %s", FormatPermissions(entry.Permissions), size, FormatTime(entry.MTime), label)
}

// List resolves path against t and renders the result. It returns the
// ordered surviving names for programmatic callers alongside the report,
// in both plain and detailed modes.
func List(t *tree.Tree, path string, opts Options) ([]string, string, error) {
	node, err := t.Resolve(path)
	if err != nil {
		return nil, "", err
	}

	if !node.IsDir() {
		entry := EntryForNode(node)
		if opts.Detailed {
			return []string{entry.Name}, DetailLine(entry, "./"+path, opts.HumanReadable), nil
		}
		return []string{entry.Name}, entry.Name, nil
	}

	entries, err := Entries(node, opts)
	if err != nil {
		return nil, "", err
	}

	names := make([]string, len(entries))
	for idx, entry := range entries {
		names[idx] = entry.Name
	}

	return names, Render(entries, opts), nil
}
