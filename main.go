package main

import "mkdev/cmd"

func main() {
	cmd.Execute()
}
