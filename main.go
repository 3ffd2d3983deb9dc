package main

import "github.com/sethmckilla/mckilla/cmd"

func main() {
	cmd.Execute()
}
