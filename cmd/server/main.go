package main

import "github.com/sunjoe508/inteligent-munga/internal/app"

// @title           INTELIGENT MUNGA API
// @version         4.0.5
// @description     Backend терминала стратегической аналитики.
// @BasePath        /
func main() {
	app.Run()
}
