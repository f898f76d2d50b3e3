package main

import "github.com/trackerhq/tracker/cmd"

func main() {
	cmd.Execute()
}
