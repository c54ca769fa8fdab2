package main

import (
	"context"
	"fmt"
)

func NewSystem(config Config) *System {
	system := &System{
		root:            config.Root,
		implementations: Implementations,
		style:           config.Style,
	}
	if config.DbUrl != "" {
		system.storage = &Storage{Url: config.DbUrl, AuthToken: config.DbAuthToken}
	}
	return system
}

func main() {
	defer Logger.Sync()

	config := LoadConfig()
	system := NewSystem(config)
	if err := system.Run(context.Background()); err != nil {
		Logger.Fatalf("failed to generate charts: %v", err)
	}
	fmt.Println("charts generated successfully")
}
