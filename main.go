package main

import "github.com/YangQing-Lin/cmd-baker/cmd"

func main() {
	cmd.Execute()
}
