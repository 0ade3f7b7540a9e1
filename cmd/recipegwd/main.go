package main

import (
	"log"

	"github.com/NVIDIA/recipe-gateway/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
