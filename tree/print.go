package tree

import (
	"fmt"
	"strings"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// String returns a string representation of the tree rooted at n.
// The sample tree looks like this:
//
//	A
//	├─L─B
//	│   ├─L─D
//	│   │   └─R─H
//	│   └─R─E
//	└─R─C
//	    ├─L─F
//	    └─R─G
//	        ├─L─I
//	        └─R─J
//
// Only Left and Right are followed. This uses recursion, so don't
// print very deep trees.
func (n *Node[T]) String() string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, n, "", "", true, false)
	return sb.String()
}

func printvisit[T any](
	sb *strings.Builder, n *Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Value))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
