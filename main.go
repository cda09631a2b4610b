package main

import "github.com/thenoetrevino/taskr/cmd"

func main() {
	cmd.Execute()
}
