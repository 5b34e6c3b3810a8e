package main

import (
	"os"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
