package main

import "github.com/gnames/gnfish/cmd"

func main() {
	cmd.Execute()
}
