package main

import "colcon-ls/internal/cli"

func main() {
	cli.Execute()
}
