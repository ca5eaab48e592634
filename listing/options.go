package listing

const (
	FilterFiles       = "file"
	FilterDirectories = "dir"
)

// Options mirror the flags of the command-line surface. The zero value
// lists visible entries in document order, names only, raw byte sizes.
type Options struct {
	ShowHidden    bool
	Detailed      bool
	Reverse       bool
	SortByTime    bool
	HumanReadable bool
	FilterBy      string
}
