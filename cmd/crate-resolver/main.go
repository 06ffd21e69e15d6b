package main

import "crate-resolver/internal/cli"

func main() {
	cli.Execute()
}
