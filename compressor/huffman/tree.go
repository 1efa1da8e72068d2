package huffman

import (
	"container/heap"
)

const noChild = -1

// huffmanNode lives in a Tree's arena and refers to its children by index.
// Leaves carry a symbol; internal nodes only aggregate weight.
type huffmanNode struct {
	weight      uint64
	symbol      byte
	isLeaf      bool
	left, right int
}

// Tree is a Huffman tree stored as an arena. Leaves are allocated first in
// ascending symbol order, internal nodes in merge order, so the arena index
// doubles as the insertion sequence used to break weight ties.
type Tree struct {
	nodes []huffmanNode
	root  int
}

// huffmanHeap is a min-heap of arena indices ordered by weight, then index.
type huffmanHeap struct {
	tree  *Tree
	items []int
}

func (hub *huffmanHeap) Push(item any) {
	hub.items = append(hub.items, item.(int))
}

func (hub *huffmanHeap) Pop() any {
	popped := hub.items[len(hub.items)-1]
	hub.items = hub.items[:len(hub.items)-1]
	return popped
}

func (hub *huffmanHeap) Len() int {
	return len(hub.items)
}

func (hub *huffmanHeap) Less(i, j int) bool {
	a, b := hub.items[i], hub.items[j]
	wa, wb := hub.tree.nodes[a].weight, hub.tree.nodes[b].weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (hub *huffmanHeap) Swap(i, j int) {
	hub.items[i], hub.items[j] = hub.items[j], hub.items[i]
}

func (tree *Tree) alloc(n huffmanNode) int {
	tree.nodes = append(tree.nodes, n)
	return len(tree.nodes) - 1
}

// BuildTree returns nil when no symbol has a non-zero count.
func BuildTree(freq *FrequencyTable) *Tree {
	tree := &Tree{nodes: make([]huffmanNode, 0, 2*len(freq))}
	treehub := &huffmanHeap{tree: tree}
	for symbol, count := range freq {
		if count == 0 {
			continue
		}
		index := tree.alloc(huffmanNode{
			weight: count,
			symbol: byte(symbol),
			isLeaf: true,
			left:   noChild,
			right:  noChild,
		})
		treehub.items = append(treehub.items, index)
	}

	switch treehub.Len() {
	case 0:
		return nil
	case 1:
		// A lone leaf still needs one edge so its code is "0".
		leaf := treehub.items[0]
		tree.root = tree.alloc(huffmanNode{
			weight: tree.nodes[leaf].weight,
			left:   leaf,
			right:  noChild,
		})
		return tree
	}

	heap.Init(treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(treehub).(int)
		y := heap.Pop(treehub).(int)
		heap.Push(treehub, tree.alloc(huffmanNode{
			weight: tree.nodes[x].weight + tree.nodes[y].weight,
			left:   x,
			right:  y,
		}))
	}
	tree.root = heap.Pop(treehub).(int)
	return tree
}

// Codes walks the tree depth first, appending 0 for left edges and 1 for
// right edges.
func (tree *Tree) Codes() (CodeTable, error) {
	table := make(CodeTable)
	if tree == nil {
		return table, nil
	}
	var walk func(index int, prefix Code) error
	walk = func(index int, prefix Code) error {
		node := &tree.nodes[index]
		if node.isLeaf {
			table[node.symbol] = prefix
			return nil
		}
		if prefix.Length == maxCodeLength {
			return ErrCodeTooLong
		}
		if node.left != noChild {
			if err := walk(node.left, prefix.append(0)); err != nil {
				return err
			}
		}
		if node.right != noChild {
			return walk(node.right, prefix.append(1))
		}
		return nil
	}
	if err := walk(tree.root, Code{}); err != nil {
		return nil, err
	}
	return table, nil
}

// Weight is the total symbol count under the root.
func (tree *Tree) Weight() uint64 {
	if tree == nil {
		return 0
	}
	return tree.nodes[tree.root].weight
}
