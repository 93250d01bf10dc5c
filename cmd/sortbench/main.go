package main

import "github.com/amirkhaki/sortbench/cmd/sortbench/cmd"

func main() {
	cmd.Execute()
}
