package matrix

import "context"

// memoize returns a copy of the tree rooted at root in which every
// elementwise node reachable through more than one path has been replaced
// by a leaf over a scratch matrix holding its values. Each shared node is
// evaluated exactly once. It also returns the number of replaced nodes.
//
// root must be valid: no recorded error and a non-scalar shape.
func memoize[T Numeric](ctx context.Context, ev *Evaluator, root *node[T]) (*node[T], int, error) {
	refs := make(map[*node[T]]int)
	countRefs(root, refs)

	done := make(map[*node[T]]*node[T])
	out, err := rewrite(ctx, ev, root, refs, done)
	if err != nil {
		return nil, 0, err
	}
	return out, len(done), nil
}

// countRefs records, for every node, the number of parent edges pointing at
// it. Children of a node are only descended into on its first visit.
func countRefs[T Numeric](n *node[T], refs map[*node[T]]int) {
	if n.kind != KindCombine {
		return
	}
	for _, child := range [2]*node[T]{n.left, n.right} {
		refs[child]++
		if refs[child] == 1 {
			countRefs(child, refs)
		}
	}
}

func rewrite[T Numeric](ctx context.Context, ev *Evaluator, n *node[T], refs map[*node[T]]int, done map[*node[T]]*node[T]) (*node[T], error) {
	if n.kind != KindCombine {
		return n, nil
	}
	if leaf, ok := done[n]; ok {
		return leaf, nil
	}

	left, err := rewrite(ctx, ev, n.left, refs, done)
	if err != nil {
		return nil, err
	}
	right, err := rewrite(ctx, ev, n.right, refs, done)
	if err != nil {
		return nil, err
	}
	out := n
	if left != n.left || right != n.right {
		out = &node[T]{kind: KindCombine, op: n.op, left: left, right: right, shape: n.shape}
	}
	if refs[n] < 2 {
		return out, nil
	}

	scratch := &Dense[T]{}
	scratch.bind(n.shape)
	if err := fill(ctx, ev, scratch.data, out); err != nil {
		return nil, err
	}
	leaf := leafNode(scratch)
	done[n] = leaf
	return leaf, nil
}
