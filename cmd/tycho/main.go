// Tycho exports multi-agent observation history from SQLite stores.
//
// A simulation run records each agent's observation tensor per
// (episode, step) into an observations table. Tycho reads those stores and
// reshapes the tensors into per-agent CSV files, one column per tensor
// element with hierarchical column names that preserve the full index path.
//
// Usage:
//
//	# Number of recorded observation samples
//	tycho count -f observations.db
//
//	# Export the 2nd sample, one CSV per agent
//	tycho export -f observations.db -o 2 -d ./out
//
//	# List (episode, step) pairs with their observation indices
//	tycho samples -f observations.db
//
//	# Show version information
//	tycho version
package main

func main() {
	Execute()
}
