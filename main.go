package main

import "github.com/theirongolddev/rebalance/cmd"

func main() {
	cmd.Execute()
}
