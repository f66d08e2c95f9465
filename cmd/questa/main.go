package main

import "questa/cmd/questa/root"

func main() {
	root.Execute()
}
