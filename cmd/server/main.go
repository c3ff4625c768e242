// @title         skillpath API
// @version       1.0
// @description   Account registration/login and AI-generated career suggestions for a skill.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"

	_ "github.com/artem13815/skillpath/docs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
