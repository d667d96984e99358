package main

import "github.com/mblarsen/balloon/cmd"

func main() {
	cmd.Execute()
}
