// Package catalog holds the static product list with AR preview metadata.
// Items are embedded at build time and never mutated.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed items.json
var itemsFS embed.FS

// Annotation is a hotspot on a 3D model: where it sits on the mesh and the
// camera framing used when it is focused.
type Annotation struct {
	Slot     string `json:"slot"`
	Position string `json:"position"`
	Normal   string `json:"normal"`
	Orbit    string `json:"orbit"`
	Target   string `json:"target"`
	Title    string `json:"title"`
}

// Item is a purchasable product with references to its 3D assets.
// ModelAssetKey points to the glTF binary, IOSModelAssetKey to the usdz
// variant used by iOS quick-look.
type Item struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         string       `json:"category"`
	Color            string       `json:"color"`
	PriceINR         int          `json:"price_inr"`
	ModelAssetKey    string       `json:"model_asset_key"`
	IOSModelAssetKey string       `json:"ios_model_asset_key"`
	Annotations      []Annotation `json:"annotations"`
}

var items []Item
var byID map[string]*Item

func init() {
	data, err := itemsFS.ReadFile("items.json")
	if err != nil {
		panic(fmt.Sprintf("catalog: reading embedded items: %v", err))
	}
	if err := json.Unmarshal(data, &items); err != nil {
		panic(fmt.Sprintf("catalog: decoding embedded items: %v", err))
	}
	byID = make(map[string]*Item, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
}

// Items returns the full catalog in its declared order. The returned slice
// must be treated as read-only.
func Items() []Item {
	return items
}

// Find returns the item with the given id, or nil when unknown.
func Find(id string) *Item {
	return byID[id]
}
