package plume

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// style.css and beacon.js.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
