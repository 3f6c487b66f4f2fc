package main

import "github.com/clems4ever/pjdsplit/cmd"

func main() {
	cmd.Execute()
}
