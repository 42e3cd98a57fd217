package main

import "lockin/cmd/lockin/root"

func main() {
	root.Execute()
}
