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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

Build, inspect and stress AVL trees from the terminal.

Built with Go %s

# 1. Commands
* **demo**: replay the reference sequence and print the resulting tree
* **replay** <script>...: apply operation scripts (use - for stdin)
* **stress**: random inserts and deletes, invariants checked after every step
* **tui**: interactive prompt with a live view of the tree
* **dashboard** <script>: shape statistics of the tree built by a script
* **settings**: show or create ~/.avltree.yaml

# 2. Script format
One operation per line, # starts a comment, keys may be quoted.

* insert 30 15 20
* delete 40
* find 25
* print, check, clear

# 3. Key kinds
* int (default), float, string

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
