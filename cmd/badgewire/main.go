package main

import "github.com/atrelio/badgewire/internal/cli"

func main() {
	cli.Execute()
}
