package ast

// Walk traverses a tree in pre-order. f is called for each node; a false
// return prunes that node's children. Walk never mutates the tree and is
// safe to run concurrently with other readers.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, child := range n.ChildNodes() {
		Walk(child, f)
	}
}
