package main

import "antipodes-api/internal/cli"

func main() {
	cli.Execute()
}
