package main

import "github.com/yuikisato/clipscout/internal/cli"

func main() { cli.Main() }
