package service

import (
	"fmt"

	"github.com/lib/pq"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
)

type PrereqKind uint8

const (
	PrereqLeaf PrereqKind = iota
	PrereqAnd
	PrereqOr
)

// PrereqNode: representasi in-memory pohon prasyarat.
// Encoding flat (idx/ptr) hanya dipakai di boundary storage;
// di sini pohon jadi tagged union supaya bebas aritmetika indeks.
type PrereqNode struct {
	Kind     PrereqKind
	CourseID string // terisi hanya untuk leaf
	Children []*PrereqNode
}

// DecodePrereqNodes merekonstruksi pohon dari baris flat.
// Baris kosong = course tanpa prasyarat (nil, selalu satisfied).
func DecodePrereqNodes(rows []coursemodel.CoursePrerequisiteNodeModel) (*PrereqNode, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	byIdx := make(map[int]coursemodel.CoursePrerequisiteNodeModel, len(rows))
	for _, r := range rows {
		if _, dup := byIdx[r.PrerequisiteIdx]; dup {
			return nil, fmt.Errorf("prerequisite: duplicate node idx %d", r.PrerequisiteIdx)
		}
		byIdx[r.PrerequisiteIdx] = r
	}

	// traversal iteratif seperti FlattenPrereqTree: kedalaman pohon
	// tergantung data, jangan dipercayakan ke call stack host.
	// Alokasi node terjadi saat parent menunjuknya; idx yang muncul dua kali
	// (termasuk ptr balik ke ancestor, alias siklus) langsung ditolak.
	root := &PrereqNode{}
	nodes := map[int]*PrereqNode{0: root}
	stack := []int{0}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row, ok := byIdx[idx]
		if !ok {
			return nil, fmt.Errorf("prerequisite: missing node idx %d", idx)
		}
		n := nodes[idx]
		switch row.PrerequisiteVal {
		case coursemodel.PrereqNodeAnd:
			n.Kind = PrereqAnd
		case coursemodel.PrereqNodeOr:
			n.Kind = PrereqOr
		default:
			n.Kind = PrereqLeaf
			n.CourseID = row.PrerequisiteVal
			continue
		}
		n.Children = make([]*PrereqNode, 0, len(row.PrerequisitePtr))
		for _, p := range row.PrerequisitePtr {
			ci := int(p)
			if _, seen := nodes[ci]; seen {
				// setiap idx harus punya tepat satu parent
				return nil, fmt.Errorf("prerequisite: node idx %d referenced twice", ci)
			}
			child := &PrereqNode{}
			nodes[ci] = child
			n.Children = append(n.Children, child)
			stack = append(stack, ci)
		}
	}
	if len(nodes) != len(rows) {
		return nil, fmt.Errorf("prerequisite: %d node tidak terjangkau dari root", len(rows)-len(nodes))
	}
	return root, nil
}

// FlattenPrereqTree menyerialisasi pohon ke baris flat (idx 0 = root),
// skema sama dengan yang dibaca DecodePrereqNodes.
func FlattenPrereqTree(courseID string, root *PrereqNode) []coursemodel.CoursePrerequisiteNodeModel {
	if root == nil {
		return nil
	}
	var out []coursemodel.CoursePrerequisiteNodeModel
	type item struct {
		idx  int
		node *PrereqNode
	}
	cnt := 0
	stack := []item{{0, root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row := coursemodel.CoursePrerequisiteNodeModel{
			PrerequisiteCourseID: courseID,
			PrerequisiteIdx:      it.idx,
		}
		switch it.node.Kind {
		case PrereqLeaf:
			row.PrerequisiteVal = it.node.CourseID
		case PrereqAnd, PrereqOr:
			if it.node.Kind == PrereqAnd {
				row.PrerequisiteVal = coursemodel.PrereqNodeAnd
			} else {
				row.PrerequisiteVal = coursemodel.PrereqNodeOr
			}
			ptr := make(pq.Int64Array, 0, len(it.node.Children))
			for _, child := range it.node.Children {
				cnt++
				ptr = append(ptr, int64(cnt))
				stack = append(stack, item{cnt, child})
			}
			row.PrerequisitePtr = ptr
		}
		out = append(out, row)
	}
	return out
}

// Satisfied mengevaluasi pohon terhadap himpunan course yang sudah lulus.
// Evaluasi post-order iteratif dengan stack eksplisit: kedalaman pohon
// tergantung data, jangan dipercayakan ke call stack host.
//
// Semantik anak kosong (disengaja, bukan kebetulan):
// AND tanpa anak = true (vacuous), OR tanpa anak = false.
// Receiver nil = tanpa prasyarat = true.
func (n *PrereqNode) Satisfied(completed map[string]struct{}) bool {
	if n == nil {
		return true
	}

	type frame struct {
		node *PrereqNode
		next int
		acc  bool
	}
	newFrame := func(node *PrereqNode) frame {
		return frame{node: node, acc: node.Kind == PrereqAnd}
	}

	var last bool
	stack := []frame{newFrame(n)}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.node.Kind == PrereqLeaf {
			_, ok := completed[f.node.CourseID]
			last = ok
			stack = stack[:len(stack)-1]
			continue
		}

		// gabungkan hasil anak yang baru selesai
		if f.next > 0 {
			if f.node.Kind == PrereqAnd {
				f.acc = f.acc && last
			} else {
				f.acc = f.acc || last
			}
		}

		// short-circuit atau semua anak habis
		done := f.next >= len(f.node.Children)
		if f.next > 0 {
			if f.node.Kind == PrereqAnd && !f.acc {
				done = true
			}
			if f.node.Kind == PrereqOr && f.acc {
				done = true
			}
		}
		if done {
			last = f.acc
			stack = stack[:len(stack)-1]
			continue
		}

		child := f.node.Children[f.next]
		f.next++
		stack = append(stack, newFrame(child))
	}
	return last
}
