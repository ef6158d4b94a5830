package main

import (
	"fmt"

	"github.com/lumenrender/lumen/pkg/core"
	"github.com/lumenrender/lumen/pkg/scenecap"
	"github.com/lumenrender/lumen/pkg/scenecap/scenetest"
)

// loadScene resolves name against a small built-in registry, standing in
// for main.rs's SceneLoaderManager (a JSON scene-file loader is out of
// scope here — see root.go's globalFlags doc comment).
func loadScene(name string) (scenecap.Scene, error) {
	switch name {
	case "furnace":
		return scenetest.NewFurnaceScene(core.NewColorValue(10), core.NewColorValue(0.7)), nil
	case "dim-furnace":
		return scenetest.NewFurnaceScene(core.NewColorValue(1), core.NewColorValue(0.9)), nil
	default:
		return nil, fmt.Errorf("lumen: unknown scene %q (known scenes: furnace, dim-furnace)", name)
	}
}
