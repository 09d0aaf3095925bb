package docsite

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// docsite.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func stylesheet() ([]byte, error) {
	return EmbeddedAssets.ReadFile("embedded/docsite.css")
}
