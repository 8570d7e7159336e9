package main

import "tiffinbox/marketplace-svc/cmd"

func main() {
	cmd.Execute()
}
