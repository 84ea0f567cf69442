package drawable

import (
	"fmt"
	"strings"
)

// ShaderError is returned when a program fails to compile or link. Log holds the driver
// diagnostics raylib reported while building it.
type ShaderError struct {
	Program string
	Log     []string
}

func (e *ShaderError) Error() string {
	if len(e.Log) == 0 {
		return fmt.Sprintf("shader %q: compile or link failed", e.Program)
	}
	return fmt.Sprintf("shader %q: compile or link failed:\n%s", e.Program, strings.Join(e.Log, "\n"))
}

// AssetKind names the asset an AssetError refers to.
type AssetKind string

const (
	KindHeightMap AssetKind = "height map"
	KindMesh      AssetKind = "mesh"
	KindTexture   AssetKind = "texture"
)

// AssetError is returned when an optional asset cannot be loaded. The scene logs it and
// renders without the asset.
type AssetError struct {
	Kind AssetKind
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("load %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}
