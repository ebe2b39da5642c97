package main

import "github.com/NVIDIA/safevul/pkg/cli"

func main() {
	cli.Execute()
}
