package component

// Component is a set of node ids produced by severing a tree's cut edges;
// its Weight is the sum of its nodes' weights (1 per node if unweighted).
type Component struct {
	Nodes  []int
	Weight int64
}
