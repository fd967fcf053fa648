package component

// Cell is an immutable layout slot of the current level's grid
type Cell struct {
	Index int
	Row   int
	Col   int
}
