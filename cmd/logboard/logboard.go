package main

import "github.com/jtclarkjr/logboard/internal/app"

func main() {
	app.Run()
}
