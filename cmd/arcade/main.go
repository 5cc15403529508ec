package main

import "arcade/internal/cli"

func main() {
	cli.Execute()
}
