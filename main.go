package main

import (
	"github.com/treebump/treebump/cmd"
)

func main() {
	cmd.Execute()
}
