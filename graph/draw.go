/*
   Copyright 2026 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package graph

import (
	"github.com/m1gwings/treedrawer/tree"

	"dirpx.dev/lfx/apis"
)

// DrawTree renders the transitive dependents of rootID as a drawn tree,
// for logs and debugging sessions. A node reached twice is rendered as a
// leaf marked "(cycle)" instead of being expanded again.
func DrawTree(g apis.Graph, rootID string) string {
	t := tree.NewTree(tree.NodeString(rootID))
	seen := map[string]struct{}{rootID: {}}
	addDependents(t, g, rootID, seen)
	return t.String()
}

func addDependents(node *tree.Tree, g apis.Graph, id string, seen map[string]struct{}) {
	for _, dep := range g.Dependents(id) {
		if _, ok := seen[dep]; ok {
			node.AddChild(tree.NodeString(dep + " (cycle)"))
			continue
		}
		seen[dep] = struct{}{}
		child := node.AddChild(tree.NodeString(dep))
		addDependents(child, g, dep, seen)
	}
}
