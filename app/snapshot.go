package app

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// SnapshotPath resolves the configured screenshot target
// A path with an image extension is used as is; anything else is a
// directory that receives one file per session
func (a *App) SnapshotPath() string {
	p := a.cfg.Screenshot.Path
	if p == "" {
		return ""
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp":
		return p
	}
	return filepath.Join(p, "vi-snake-"+a.session.String()+".png")
}

func (a *App) snapshot(g *engine.Game) {
	path := a.SnapshotPath()
	if path == "" {
		return
	}
	if err := render.SaveSnapshot(g, path, a.cfg.Screenshot.CellSize); err != nil {
		log.Printf("[APP] snapshot failed: %v", err)
		return
	}
	log.Printf("[APP] snapshot written to %s", path)
}
