// Package models reads camera settings from glTF scenes.
package models

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
)

// ErrNoCamera is returned when a document has no usable perspective camera.
var ErrNoCamera = errors.New("no perspective camera with an aspect ratio")

// CameraInfo is the part of a glTF perspective camera the renderer uses.
type CameraInfo struct {
	Name        string
	AspectRatio float64 // width / height
	YFov        float64 // vertical field of view in radians, informational
}

// LoadCamera opens a .gltf or .glb file and returns its first perspective
// camera that declares an aspect ratio.
func LoadCamera(path string) (CameraInfo, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return CameraInfo{}, fmt.Errorf("open gltf: %w", err)
	}

	info, err := FindCamera(doc)
	if err != nil {
		return CameraInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// FindCamera returns the first perspective camera in doc with a positive
// aspect ratio. Orthographic cameras are skipped.
func FindCamera(doc *gltf.Document) (CameraInfo, error) {
	for i, cam := range doc.Cameras {
		if cam == nil || cam.Perspective == nil || cam.Perspective.AspectRatio == nil {
			continue
		}
		ar := *cam.Perspective.AspectRatio
		if ar <= 0 {
			continue
		}

		name := cam.Name
		if name == "" {
			name = fmt.Sprintf("camera %d", i)
		}
		return CameraInfo{
			Name:        name,
			AspectRatio: ar,
			YFov:        cam.Perspective.Yfov,
		}, nil
	}
	return CameraInfo{}, ErrNoCamera
}
