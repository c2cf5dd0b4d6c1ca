package main

import "petquest/cmd/petq/root"

func main() {
	root.Execute()
}
