package main

import (
	"eventmap-api/core/logger"
	"eventmap-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", err)
	}
}
