package main

import "github.com/ZanzyTHEbar/hongyeon/internal/cli"

func main() {
	cli.Execute()
}
