package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	coursemodel "kampusku_backend/internals/features/academics/courses/model"
)

func leaf(courseID string) *PrereqNode {
	return &PrereqNode{Kind: PrereqLeaf, CourseID: courseID}
}

func and(children ...*PrereqNode) *PrereqNode {
	return &PrereqNode{Kind: PrereqAnd, Children: children}
}

func or(children ...*PrereqNode) *PrereqNode {
	return &PrereqNode{Kind: PrereqOr, Children: children}
}

func completedSet(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

func TestSatisfiedTruthTable(t *testing.T) {
	// AND(OR(A,B), C)
	tree := and(or(leaf("A"), leaf("B")), leaf("C"))

	tests := []struct {
		name      string
		completed map[string]struct{}
		want      bool
	}{
		{"kosong", completedSet(), false},
		{"hanya A", completedSet("A"), false},
		{"hanya C", completedSet("C"), false},
		{"A dan C", completedSet("A", "C"), true},
		{"B dan C", completedSet("B", "C"), true},
		{"A B C", completedSet("A", "B", "C"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tree.Satisfied(tc.completed))
		})
	}
}

func TestSatisfiedEmptyChildren(t *testing.T) {
	require.True(t, and().Satisfied(completedSet()))  // AND kosong = vacuous true
	require.False(t, or().Satisfied(completedSet())) // OR kosong = false

	var none *PrereqNode
	require.True(t, none.Satisfied(completedSet())) // tanpa prasyarat
}

func TestSatisfiedShortCircuitDeepTree(t *testing.T) {
	// pohon dalam (rantai OR di bawah AND) tetap dievaluasi benar —
	// evaluator pakai stack eksplisit, bukan rekursi host
	deep := leaf("X")
	for i := 0; i < 5000; i++ {
		deep = or(deep)
	}
	tree := and(deep, leaf("Y"))
	require.True(t, tree.Satisfied(completedSet("X", "Y")))
	require.False(t, tree.Satisfied(completedSet("X")))
	require.False(t, tree.Satisfied(completedSet("Y")))
}

func TestFlattenDecodeRoundTrip(t *testing.T) {
	tree := and(or(leaf("A"), leaf("B")), leaf("C"), or(leaf("D"), and(leaf("E"), leaf("F"))))
	rows := FlattenPrereqTree("IF301", tree)
	require.NotEmpty(t, rows)
	for _, r := range rows {
		require.Equal(t, "IF301", r.PrerequisiteCourseID)
	}

	back, err := DecodePrereqNodes(rows)
	require.NoError(t, err)

	// semantik identik untuk beberapa himpunan lulus yang representatif
	for _, set := range []map[string]struct{}{
		completedSet(),
		completedSet("A", "C", "D"),
		completedSet("B", "C", "E", "F"),
		completedSet("A", "B"),
		completedSet("A", "C"),
	} {
		require.Equal(t, tree.Satisfied(set), back.Satisfied(set))
	}
}

func TestDecodeDeepChain(t *testing.T) {
	// rantai 5000 level ikut jalur iteratif yang sama dengan Flatten/Satisfied;
	// decode tidak boleh bergantung pada kedalaman call stack host
	deep := leaf("X")
	for i := 0; i < 5000; i++ {
		deep = or(deep)
	}
	rows := FlattenPrereqTree("IF400", deep)
	require.Len(t, rows, 5001)

	back, err := DecodePrereqNodes(rows)
	require.NoError(t, err)
	require.True(t, back.Satisfied(completedSet("X")))
	require.False(t, back.Satisfied(completedSet()))
}

func TestFlattenNilTree(t *testing.T) {
	require.Nil(t, FlattenPrereqTree("IF101", nil))

	root, err := DecodePrereqNodes(nil)
	require.NoError(t, err)
	require.Nil(t, root)
}

func TestDecodeRejectsCorruptRows(t *testing.T) {
	row := func(idx int, val string, ptr ...int64) coursemodel.CoursePrerequisiteNodeModel {
		return coursemodel.CoursePrerequisiteNodeModel{
			PrerequisiteCourseID: "IF999",
			PrerequisiteIdx:      idx,
			PrerequisiteVal:      val,
			PrerequisitePtr:      pq.Int64Array(ptr),
		}
	}

	tests := []struct {
		name string
		rows []coursemodel.CoursePrerequisiteNodeModel
	}{
		{"root hilang", []coursemodel.CoursePrerequisiteNodeModel{row(1, "A")}},
		{"anak hilang", []coursemodel.CoursePrerequisiteNodeModel{row(0, coursemodel.PrereqNodeAnd, 1)}},
		{"idx ganda", []coursemodel.CoursePrerequisiteNodeModel{
			row(0, coursemodel.PrereqNodeAnd, 1), row(1, "A"), row(1, "B"),
		}},
		{"dua parent utk satu node", []coursemodel.CoursePrerequisiteNodeModel{
			row(0, coursemodel.PrereqNodeAnd, 1, 2), row(1, coursemodel.PrereqNodeOr, 2), row(2, "A"),
		}},
		{"siklus", []coursemodel.CoursePrerequisiteNodeModel{
			row(0, coursemodel.PrereqNodeAnd, 0),
		}},
		{"node yatim", []coursemodel.CoursePrerequisiteNodeModel{
			row(0, "A"), row(1, "B"),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePrereqNodes(tc.rows)
			require.Error(t, err)
		})
	}
}
