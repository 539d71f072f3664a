package main

import "github.com/javajoker/storefront-admin/cmd/adminctl/commands"

func main() {
	commands.Execute()
}
