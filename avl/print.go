// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"io"
)

// Fprint draws the tree under root to w, one node per line in pre-order.
// The root and right children are marked "R----", left children "L----".
// A nil label prints keys with their default format.
//
//	R----20
//	   L----10
//	   R----30
func Fprint[K any](w io.Writer, root *Node[K], label func(*Node[K]) string) error {
	if label == nil {
		label = func(node *Node[K]) string {
			return fmt.Sprint(node.key)
		}
	}
	return fprint(w, root, "", true, label)
}

func fprint[K any](w io.Writer, node *Node[K], indent string, last bool, label func(*Node[K]) string) error {
	if node == nil {
		return nil
	}

	edge, next := "L----", indent+"|  "
	if last {
		edge, next = "R----", indent+"   "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, edge, label(node)); err != nil {
		return err
	}
	if err := fprint(w, node.left, next, false, label); err != nil {
		return err
	}
	return fprint(w, node.right, next, true, label)
}
