package layout

import (
	"github.com/xlab/treeprint"
)

// TreeString renders a box tree as an indented ASCII tree, for debugging
// and inspection in tests.
func TreeString(box *LayoutBox) string {
	tp := treeprint.New()
	tp.SetValue(box.String())
	addBoxBranch(tp, box)
	return tp.String()
}

func addBoxBranch(branch treeprint.Tree, box *LayoutBox) {
	for _, ch := range box.Children {
		if len(ch.Children) == 0 {
			branch.AddNode(ch.String())
			continue
		}
		addBoxBranch(branch.AddBranch(ch.String()), ch)
	}
}
