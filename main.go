package main

import "github.com/atomer-tools/anaconf/cmd"

func main() {
	cmd.Execute()
}
