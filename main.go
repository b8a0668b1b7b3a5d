// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/license-project/generator/cmd/licensegen"

func main() {
	cmd.Execute()
}
