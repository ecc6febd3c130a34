package main

import "leavedesk/internal/app/server"

func main() {
	server.Run()
}
