package main

import (
	"github.com/8dcc/godsong-go/cmd"
)

func main() {
	cmd.Execute()
}
