package pagescope

// Scope bounds and filters a single traversal. It is built per call and
// passed by value, so classifiers can adjust their copy without touching
// the caller's.
type Scope struct {
	// Start is the node the walk begins at. A nil Start yields nothing.
	Start Node

	// End is an exclusive boundary: the walk stops permanently when it
	// reaches End, which is never yielded. An End that is not visited
	// after Start leaves the walk unbounded.
	End Node

	// IncludeText makes text nodes eligible for output.
	IncludeText bool

	// IncludeSelf tests and possibly yields Start itself.
	IncludeSelf bool

	// Ignore suppresses individual nodes. Their descendants are still
	// visited and tested on their own.
	Ignore NodeSet

	// ChildrenOnly restricts the walk to the direct children of Start.
	ChildrenOnly bool

	// Tags and Mode form the tag filter, see FilterMode.Match.
	Tags TagSet
	Mode FilterMode
}

// Iterator is a lazy pre-order sequence of nodes produced by Traverse.
// It holds an explicit worklist, so each call to Next does only the work
// needed to reach the next match. An Iterator is not safe for concurrent
// use and cannot be rewound; call Traverse again to restart.
type Iterator struct {
	scope Scope
	keep  func(Node) bool

	self  bool
	stack []Node
	node  Node
	done  bool
}

// Traverse returns an iterator over the nodes selected by s.
//
// A node is yielded iff it is not in s.Ignore and its tag passes the
// s.Tags/s.Mode filter. Text nodes are only considered when
// s.IncludeText is set. Order is pre-order: a node before its children,
// children in document order.
func Traverse(s Scope) *Iterator {
	return newIterator(s, nil)
}

// FilteredTraverse is like Traverse but additionally requires keep to
// accept a node before it is yielded. It is the composition point for
// semantic vetoes layered on top of the structural scope.
func FilteredTraverse(s Scope, keep func(Node) bool) *Iterator {
	return newIterator(s, keep)
}

func newIterator(s Scope, keep func(Node) bool) *Iterator {
	it := &Iterator{scope: s, keep: keep}
	if s.Start == nil {
		it.done = true
		return it
	}
	it.self = s.IncludeSelf
	it.push(s.Start)
	return it
}

// Next advances to the next matching node. It returns false once the
// sequence is exhausted or the End boundary has been reached.
func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	if it.self {
		it.self = false
		if it.emit(it.scope.Start) {
			it.node = it.scope.Start
			return true
		}
	}

	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		// The boundary is checked before the text filter so an End that is
		// a text node still stops a walk that excludes text.
		if it.scope.End != nil && n == it.scope.End {
			break
		}

		if !it.scope.ChildrenOnly {
			it.push(n)
		}

		if n.Tag() == TextTag && !it.scope.IncludeText {
			continue
		}
		if it.emit(n) {
			it.node = n
			return true
		}
	}

	it.done = true
	it.stack = nil
	it.node = nil
	return false
}

// Node returns the node the iterator is positioned at, or nil before the
// first call to Next and after exhaustion.
func (it *Iterator) Node() Node {
	return it.node
}

// Collect drains the remaining nodes into a slice.
func (it *Iterator) Collect() []Node {
	var nodes []Node
	for it.Next() {
		nodes = append(nodes, it.Node())
	}
	return nodes
}

// push schedules the children of n so the first child is popped first.
func (it *Iterator) push(n Node) {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}
}

func (it *Iterator) emit(n Node) bool {
	if it.scope.Ignore.Has(n) {
		return false
	}
	if !it.scope.Mode.Match(it.scope.Tags, n.Tag()) {
		return false
	}
	return it.keep == nil || it.keep(n)
}

// HasAncestor walks upward from n's parent to the root and reports whether
// any ancestor is in markers or has a tag that passes the tags/mode filter.
// With mode Include it answers "is n nested under one of these tags"; with
// mode Exclude it answers "is n nested under anything but these tags".
// The walk never visits siblings or descendants.
func HasAncestor(n Node, markers NodeSet, tags TagSet, mode FilterMode) bool {
	if n == nil {
		return false
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if markers.Has(p) {
			return true
		}
		if mode.Match(tags, p.Tag()) {
			return true
		}
	}
	return false
}
