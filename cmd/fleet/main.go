package main

import "github.com/adamluzsi/fleet/internal/cli"

func main() {
	cli.Execute()
}
