// Package viewer models the product's 3D view: loading the model asset,
// toggling the annotation hotspots and handing off to AR. Each product page
// owns one Viewer; its state never leaks into the catalog or the wishlist.
package viewer

import (
	"context"
	"net/url"

	"github.com/arshopsy/arshopsy/internal/catalog"
)

// LoadState tracks the model download lifecycle.
type LoadState int

const (
	// Loading: resolution or download in progress.
	Loading LoadState = iota
	// Ready: the model URL resolved and the view can render.
	Ready
	// Failed: the model could not be loaded. The rest of the page stays
	// usable; only the viewer shows the error.
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// loadFailedMessage is the user-facing viewer error.
const loadFailedMessage = "Failed to load 3D model"

// ModelURLResolver resolves an item's model asset into a fetchable URL.
// The API client satisfies this.
type ModelURLResolver interface {
	ModelURL(ctx context.Context, itemID, platform string) (string, error)
}

// WishlistHooks wires the viewer's wishlist button to the caller's store.
// The viewer never touches the store directly; it only asks.
type WishlistHooks struct {
	Contains func(id string) bool
	Add      func(id string)
	Remove   func(id string)
}

// Viewer is the per-product 3D view state.
type Viewer struct {
	item            catalog.Item
	state           LoadState
	modelURL        string
	loadErr         string
	showAnnotations bool
	arSupported     bool
	qrBaseURL       string
	wishlist        WishlistHooks
}

// New returns a viewer in the Loading state for the given item.
func New(item catalog.Item, arSupported bool, qrBaseURL string) *Viewer {
	return &Viewer{item: item, state: Loading, arSupported: arSupported, qrBaseURL: qrBaseURL}
}

// SetWishlistHooks attaches the wishlist callbacks. Without them the
// viewer's wishlist button does nothing.
func (v *Viewer) SetWishlistHooks(h WishlistHooks) { v.wishlist = h }

// Wished reports whether the viewed item is on the wishlist.
func (v *Viewer) Wished() bool {
	if v.wishlist.Contains == nil {
		return false
	}
	return v.wishlist.Contains(v.item.ID)
}

// RequestWishlistToggle adds the item to the wishlist, or removes it when it
// is already there, and reports the new membership.
func (v *Viewer) RequestWishlistToggle() bool {
	if v.wishlist.Contains == nil {
		return false
	}
	if v.wishlist.Contains(v.item.ID) {
		if v.wishlist.Remove != nil {
			v.wishlist.Remove(v.item.ID)
		}
		return false
	}
	if v.wishlist.Add != nil {
		v.wishlist.Add(v.item.ID)
	}
	return true
}

// Load resolves the model URL for the given platform ("" or "ios"). A failed
// resolution marks the viewer Failed with a viewer-local message and returns
// the underlying error.
func (v *Viewer) Load(ctx context.Context, resolver ModelURLResolver, platform string) error {
	v.state = Loading
	v.loadErr = ""

	modelURL, err := resolver.ModelURL(ctx, v.item.ID, platform)
	if err != nil {
		v.state = Failed
		v.loadErr = loadFailedMessage
		return err
	}

	v.modelURL = modelURL
	v.state = Ready
	return nil
}

// State returns the current load state.
func (v *Viewer) State() LoadState { return v.state }

// ModelURL returns the resolved model URL, or "" before a successful Load.
func (v *Viewer) ModelURL() string { return v.modelURL }

// LoadError returns the viewer-local error message, or "".
func (v *Viewer) LoadError() string { return v.loadErr }

// ToggleAnnotations flips hotspot visibility and reports the new value.
func (v *Viewer) ToggleAnnotations() bool {
	v.showAnnotations = !v.showAnnotations
	return v.showAnnotations
}

// Annotations returns the item's hotspots when they are toggled on, else nil.
func (v *Viewer) Annotations() []catalog.Annotation {
	if !v.showAnnotations || v.state != Ready {
		return nil
	}
	return v.item.Annotations
}

// ARSupported reports whether this device can launch AR directly.
func (v *Viewer) ARSupported() bool { return v.arSupported }

// ARHandoffURL returns where the AR button should take the user. On AR
// capable devices that is the model itself; elsewhere it is a QR code image
// encoding the target so the user can continue on a phone.
func (v *Viewer) ARHandoffURL(target string) string {
	if v.arSupported {
		return v.modelURL
	}
	return v.qrBaseURL + "?size=150x150&data=" + url.QueryEscape(target)
}
