package entity

import "strings"

const (
	BaseURL = "https://www.bungie.net"

	MissingImagePath = "/img/misc/missing_icon_d2.png"
)

// Image is a path relative to BaseURL.
type Image struct {
	Path string `json:"path"`
}

// NewImage returns the image at path, or the missing-icon image when path is
// empty.
func NewImage(path string) Image {
	if path == "" {
		return Image{Path: MissingImagePath}
	}
	return Image{Path: path}
}

func (i Image) IsMissing() bool {
	return i.Path == "" || i.Path == MissingImagePath
}

func (i Image) URL() string {
	path := i.Path
	if path == "" {
		path = MissingImagePath
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return BaseURL + path
}

func (i Image) String() string {
	return i.URL()
}
