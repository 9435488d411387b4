package main

import "github.com/andrescamacho/realmfleet-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
