package app

import (
	"fmt"

	"meshview/hal"
	"meshview/mesh"

	"github.com/anthonynsimon/bild/imgio"
)

// SaveSnapshot writes fb as a PNG image.
func SaveSnapshot(path string, fb hal.Framebuffer) error {
	if err := imgio.Save(path, hal.Snapshot(fb), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save snapshot %q: %w", path, err)
	}
	return nil
}

// DumpMesh writes the current (deformed) vertex positions as OBJ.
func DumpMesh(path string, m *mesh.Mesh) error {
	return mesh.Save(path, m)
}
