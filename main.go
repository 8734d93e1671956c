package main

import "github.com/theirongolddev/pocketguard/cmd"

func main() {
	cmd.Execute()
}
