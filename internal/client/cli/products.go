package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/arshopsy/arshopsy/internal/client/viewer"
)

// Products lists the catalog with prices and wishlist markers.
func (a *App) Products(ctx context.Context) error {
	items, err := a.api.Catalog(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, item := range items {
		marker := " "
		if a.wishlist.Contains(item.ID) {
			marker = "*"
		}
		fmt.Printf("%s %-12s %-24s %-12s INR %d\n", marker, item.ID, item.Name, item.Category, item.PriceINR)
	}
	fmt.Println()
	fmt.Println("'show <id>' for the 3D view, 'wish <id>' to save an item.")
	return nil
}

// Show renders a product detail page: the 3D viewer with its annotation
// hotspots and the AR hand-off. A viewer failure keeps the page usable.
func (a *App) Show(ctx context.Context, id string) error {
	items, err := a.api.Catalog(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, item := range items {
		if item.ID != id {
			continue
		}

		fmt.Printf("%s (%s) - INR %d\n", item.Name, item.Category, item.PriceINR)
		fmt.Printf("Color: %s\n", item.Color)

		// Terminals cannot launch AR themselves, so the hand-off is
		// always a QR code for a phone.
		v := viewer.New(item, false, a.config.QRServiceBaseURL)
		v.SetWishlistHooks(viewer.WishlistHooks{
			Contains: a.wishlist.Contains,
			Add:      func(string) { a.wishlist.Add(item) },
			Remove:   a.wishlist.Remove,
		})
		if err := v.Load(ctx, a.api, ""); err != nil {
			fmt.Println(v.LoadError())
		} else {
			fmt.Printf("Model: %s\n", v.ModelURL())
			if v.ToggleAnnotations() {
				for _, an := range v.Annotations() {
					fmt.Printf("  [%s] %s\n", an.Slot, an.Title)
				}
			}
			target := a.config.ServerEndpointAddr + "/api/catalog/" + item.ID + "/model"
			fmt.Printf("View in your space: %s\n", v.ARHandoffURL(target))
		}

		if v.Wished() {
			fmt.Println("This item is on your wishlist.")
		} else {
			fmt.Printf("'wish %s' to save it.\n", item.ID)
		}
		return nil
	}

	fmt.Println("No such product:", id)
	return nil
}
