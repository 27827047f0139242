package main

import "tagpicker/internal/cli"

func main() {
	cli.Execute()
}
