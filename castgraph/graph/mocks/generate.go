package mocks

//go:generate mockgen -package mocks -destination mock_graph.go github.com/archichudinow/cs50ai/castgraph/graph Graph,PersonIterator
