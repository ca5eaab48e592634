package main

import (
	"github.com/joho/godotenv"

	"github.com/sdcoffey/atlas/cmd"
)

func main() {
	godotenv.Load()
	cmd.Execute()
}
