package tree

import "sort"

type sortType int

const (
	DocumentOrder sortType = iota
	ByModTime
)

// Sort orders nodes in place. Sorting is stable so that equal keys keep
// their document order.
func Sort(nodes []*Node, sType sortType) {
	sort.Stable(nodeSorter{nodes, sType})
}

type nodeSorter struct {
	nodes []*Node
	sType sortType
}

func (s nodeSorter) Len() int {
	return len(s.nodes)
}

func (s nodeSorter) Swap(i, j int) {
	s.nodes[i], s.nodes[j] = s.nodes[j], s.nodes[i]
}

func (s nodeSorter) Less(i, j int) bool {
	switch s.sType {
	case DocumentOrder:
		return s.nodes[i].Rank() < s.nodes[j].Rank()
	case ByModTime:
		return s.nodes[i].ModTime().Before(s.nodes[j].ModTime())
	default:
		return false
	}
}
