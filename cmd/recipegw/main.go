package main

import (
	"github.com/NVIDIA/recipe-gateway/pkg/cli"
)

func main() {
	cli.Execute()
}
