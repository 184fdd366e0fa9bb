package main

import (
	cmd "github.com/gradeit/gradeit/cmd/gradeit"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cmd.Execute()
}
