package xgboost

import (
	"fmt"
	"math"
)

// tree はノードの並列配列で表した1本の回帰木です。ノード0が根です。
type tree struct {
	left        []int32
	right       []int32
	splitIndex  []int32
	splitCond   []float32 // holds the leaf value on leaf nodes
	defaultLeft []bool
}

func newTree(tj *treeJSON, numFeature int) (tree, error) {
	n := len(tj.LeftChildren)
	if n == 0 {
		return tree{}, fmt.Errorf("%w: tree has no nodes", ErrInvalidModel)
	}
	if len(tj.RightChildren) != n || len(tj.SplitIndices) != n ||
		len(tj.SplitConditions) != n || len(tj.DefaultLeft) != n {
		return tree{}, fmt.Errorf("%w: node arrays differ in length", ErrInvalidModel)
	}
	for _, st := range tj.SplitType {
		if st != 0 {
			return tree{}, fmt.Errorf("%w: categorical splits", ErrUnsupportedModel)
		}
	}

	t := tree{
		left:        tj.LeftChildren,
		right:       tj.RightChildren,
		splitIndex:  tj.SplitIndices,
		splitCond:   tj.SplitConditions,
		defaultLeft: make([]bool, n),
	}
	for i, d := range tj.DefaultLeft {
		t.defaultLeft[i] = bool(d)
	}

	// 根から到達できるノードはちょうど1回ずつ訪問されなければならない（leafValue の無限ループと範囲外参照を防ぐ）
	visited := make([]bool, n)
	stack := []int32{0}
	for len(stack) > 0 {
		nid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[nid] {
			return tree{}, fmt.Errorf("%w: node %d reached twice", ErrInvalidModel, nid)
		}
		visited[nid] = true
		if t.isLeaf(nid) {
			continue
		}
		l, r := t.left[nid], t.right[nid]
		if l < 0 || int(l) >= n || r < 0 || int(r) >= n {
			return tree{}, fmt.Errorf("%w: node %d has child out of range", ErrInvalidModel, nid)
		}
		if f := t.splitIndex[nid]; f < 0 || int(f) >= numFeature {
			return tree{}, fmt.Errorf("%w: node %d splits on feature %d of %d", ErrInvalidModel, nid, f, numFeature)
		}
		stack = append(stack, l, r)
	}
	return t, nil
}

func (t *tree) isLeaf(nid int32) bool {
	return t.left[nid] == -1
}

func (t *tree) leafValue(row []float32) float32 {
	var nid int32
	for !t.isLeaf(nid) {
		v := row[t.splitIndex[nid]]
		switch {
		case math.IsNaN(float64(v)):
			if t.defaultLeft[nid] {
				nid = t.left[nid]
			} else {
				nid = t.right[nid]
			}
		case v < t.splitCond[nid]:
			nid = t.left[nid]
		default:
			nid = t.right[nid]
		}
	}
	return t.splitCond[nid]
}
