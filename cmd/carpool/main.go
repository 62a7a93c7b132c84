package main

import "github.com/andrescamacho/carpool-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
