// SPDX-License-Identifier: MPL-2.0

// renamex is a small CLI for regex-based filename search and rename.
package main

import cmd "renamex-cli/cmd/renamex"

func main() {
	cmd.Execute()
}
