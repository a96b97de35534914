package main

import "fplthreats/internal/cli"

func main() {
	cli.Execute()
}
