package ebitools

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNotFound is returned when a content path or atlas region does not exist.
var ErrNotFound = errors.New("ebitools: content not found")

// Content maps string paths to drawable images. Images are decoded from an
// fs.FS on first use and cached until Unload. Region names registered by
// LoadAtlas resolve to sub-images of their atlas page.
type Content struct {
	fsys    fs.FS
	cache   map[string]*ebiten.Image
	regions map[string]atlasRegion
	debug   bool
}

// atlasRegion locates a named sprite within an atlas page image.
type atlasRegion struct {
	page string
	rect image.Rectangle
}

// NewContent creates a content loader reading from fsys. A nil fsys only
// serves images added with Put.
func NewContent(fsys fs.FS) *Content {
	return &Content{
		fsys:    fsys,
		cache:   make(map[string]*ebiten.Image),
		regions: make(map[string]atlasRegion),
	}
}

// Put registers an already-built image under name. Useful for procedurally
// generated textures.
func (c *Content) Put(name string, img *ebiten.Image) {
	c.cache[name] = img
}

// Loaded reports whether name is currently cached.
func (c *Content) Loaded(name string) bool {
	_, ok := c.cache[name]
	return ok
}

// Load returns the image for name, decoding it on first use. Atlas region
// names take precedence over file paths.
func (c *Content) Load(name string) (*ebiten.Image, error) {
	if img, ok := c.cache[name]; ok {
		return img, nil
	}
	if r, ok := c.regions[name]; ok {
		page, err := c.Load(r.page)
		if err != nil {
			return nil, fmt.Errorf("ebitools: region %q: %w", name, err)
		}
		img := page.SubImage(r.rect).(*ebiten.Image)
		c.cache[name] = img
		return img, nil
	}
	if c.fsys == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	f, err := c.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return nil, fmt.Errorf("ebitools: open %q: %w", name, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ebitools: decode %q: %w", name, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	c.cache[name] = img
	if c.debug {
		log.Printf("[Content] loaded %q (%dx%d)", name, decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
	return img, nil
}

// Unload drops every cached image. Registered atlas regions stay known and
// are re-resolved on the next Load.
func (c *Content) Unload() {
	clear(c.cache)
}

// LoadAtlas parses TexturePacker JSON at jsonPath and registers its frame
// names as regions. Supports both the hash format ("frames" object plus
// "meta.image") and the array format ("textures" array with per-page frame
// lists). Page image paths are resolved relative to the JSON file.
func (c *Content) LoadAtlas(jsonPath string) error {
	if c.fsys == nil {
		return fmt.Errorf("%w: %q", ErrNotFound, jsonPath)
	}
	data, err := fs.ReadFile(c.fsys, jsonPath)
	if err != nil {
		return fmt.Errorf("ebitools: read atlas %q: %w", jsonPath, err)
	}
	regions, err := parseAtlas(data, path.Dir(jsonPath))
	if err != nil {
		return err
	}
	for name, r := range regions {
		c.regions[name] = r
	}
	return nil
}

// Regions returns the number of registered atlas regions.
func (c *Content) Regions() int {
	return len(c.regions)
}

// --- TexturePacker JSON ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func parseAtlas(data []byte, dir string) (map[string]atlasRegion, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage   `json:"frames"`
		Textures []jsonTexturePage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("ebitools: failed to parse atlas JSON: %w", err)
	}

	regions := make(map[string]atlasRegion)
	switch {
	case probe.Textures != nil:
		for _, tex := range probe.Textures {
			if err := addFrames(regions, tex.Frames, path.Join(dir, tex.Image)); err != nil {
				return nil, err
			}
		}
	case probe.Frames != nil:
		if probe.Meta.Image == "" {
			return nil, fmt.Errorf("ebitools: atlas JSON has no meta.image page")
		}
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("ebitools: failed to parse atlas frames: %w", err)
		}
		if err := addFrames(regions, frames, path.Join(dir, probe.Meta.Image)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("ebitools: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return regions, nil
}

func addFrames(regions map[string]atlasRegion, frames map[string]jsonFrame, page string) error {
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("ebitools: atlas region %q is rotated; rotated regions are not supported", name)
		}
		regions[name] = atlasRegion{
			page: page,
			rect: image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		}
	}
	return nil
}
