package main

import "docman/internal/app/server"

func main() {
	server.Run()
}
