package main

import (
	"github.com/yeojunjie/tune-transformer/cmd"
)

func main() {
	cmd.Execute()
}
