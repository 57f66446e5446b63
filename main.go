package main

import "github.com/tupyy/either/cmd"

func main() {
	cmd.Execute()
}
