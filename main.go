package main

import "conquest/cli"

func main() {
	cli.Execute()
}
