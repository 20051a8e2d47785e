package main

import (
	"raypick/internal/config"
	"raypick/internal/game"
)

func main() {
	cfg, err := config.LoadDemo()
	if err != nil {
		config.Exitf("raycastdemo: %v", err)
	}
	game.New(cfg).Run()
}
