package main

import "github.com/shelftools/shelf/internal/cli"

func main() {
	cli.Execute()
}
