package main

import "github.com/LovationAdmin/calc-api/cli"

func main() {
	cli.Execute()
}
