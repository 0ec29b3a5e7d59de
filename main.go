package main

import "github.com/osohub/cli/internal/cmd"

func main() {
	cmd.Execute()
}
