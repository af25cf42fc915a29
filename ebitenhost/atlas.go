package ebitenhost

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/thicket"
)

// Region describes a sub-rectangle within an atlas page.
type Region struct {
	Page          int // index into Atlas.Pages
	X, Y          int // top-left corner within the page
	Width, Height int
}

// Atlas maps texture ids to regions of one or more page images.
type Atlas struct {
	// Pages contains the page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[thicket.TextureID]Region
}

// NewAtlas returns an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{regions: make(map[thicket.TextureID]Region)}
}

// Add registers img as its own page covering the whole image. Registering
// the same id again replaces the previous region.
func (a *Atlas) Add(id thicket.TextureID, img *ebiten.Image) {
	b := img.Bounds()
	a.Pages = append(a.Pages, img)
	a.regions[id] = Region{Page: len(a.Pages) - 1, X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
}

// SetRegion registers a region of an existing page.
func (a *Atlas) SetRegion(id thicket.TextureID, r Region) {
	a.regions[id] = r
}

// Region returns the region for id and whether it exists.
func (a *Atlas) Region(id thicket.TextureID) (Region, bool) {
	r, ok := a.regions[id]
	return r, ok
}

// Len returns the number of registered regions.
func (a *Atlas) Len() int { return len(a.regions) }

// Image returns the sub-image of id covered by the texture's UVs. Unknown
// ids (and regions on missing pages) resolve to a 1x1 magenta placeholder.
func (a *Atlas) Image(tex thicket.Texture) *ebiten.Image {
	r, ok := a.regions[tex.ID]
	if !ok || r.Page < 0 || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		if globalDebug {
			log.Printf("thicket: atlas region %q not found, using magenta placeholder", tex.ID)
		}
		return ensureMagentaImage()
	}
	rect := uvRect(r, tex)
	if rect.Empty() {
		return nil
	}
	return a.Pages[r.Page].SubImage(rect).(*ebiten.Image)
}

// uvRect maps the texture's UVs onto the pixels of r.
func uvRect(r Region, tex thicket.Texture) image.Rectangle {
	x0 := r.X + int(tex.U1*float64(r.Width)+0.5)
	y0 := r.Y + int(tex.V1*float64(r.Height)+0.5)
	x1 := r.X + int(tex.U2*float64(r.Width)+0.5)
	y1 := r.Y + int(tex.V2*float64(r.Height)+0.5)
	return image.Rect(x0, y0, x1, y1)
}

// magentaImage stands in for missing regions.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Both the hash format (single "frames" object) and the array
// format ("textures" array with per-page frame lists) are supported.
// Rotated or trimmed frames are rejected: nine-slicing needs the sprite
// exactly as authored.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("thicket: failed to parse atlas JSON: %w", err)
	}

	atlas := NewAtlas()
	atlas.Pages = pages

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("thicket: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
	Trimmed bool     `json:"trimmed"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("thicket: failed to parse atlas frames: %w", err)
	}
	return addFrames(frames, page, atlas)
}

func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("thicket: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		if err := addFrames(tex.Frames, i, atlas); err != nil {
			return err
		}
	}
	return nil
}

func addFrames(frames map[string]jsonFrame, page int, atlas *Atlas) error {
	for name, f := range frames {
		if f.Rotated || f.Trimmed {
			return fmt.Errorf("thicket: atlas frame %q is rotated or trimmed", name)
		}
		atlas.regions[thicket.TextureID(name)] = Region{
			Page:   page,
			X:      f.Frame.X,
			Y:      f.Frame.Y,
			Width:  f.Frame.W,
			Height: f.Frame.H,
		}
	}
	return nil
}
