package main

import "fxr-query/cmd"

func main() {
	cmd.Execute()
}
