package main

import "github.com/pdrpinto/astargraph/internal/cli"

func main() {
	cli.Execute()
}
