package main

import "github.com/bobiverse/pptxbullet/internal/cli"

func main() {
	cli.Execute()
}
