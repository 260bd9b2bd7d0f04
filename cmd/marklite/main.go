package main

import (
	"log"

	"github.com/avelorn/marklite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
