package cli

import (
	"context"
	"fmt"
	"log"
)

// Wish adds a catalog item to the wishlist. Adding an item twice is a no-op.
func (a *App) Wish(ctx context.Context, id string) error {
	items, err := a.api.Catalog(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, item := range items {
		if item.ID == id {
			a.wishlist.Add(item)
			fmt.Printf("Added %s to your wishlist.\n", item.Name)
			return nil
		}
	}

	fmt.Println("No such product:", id)
	return nil
}

// Unwish removes an item from the wishlist. Removing an absent item is a
// no-op and is reported as such.
func (a *App) Unwish(ctx context.Context, id string) error {
	if !a.wishlist.Contains(id) {
		printlnFn("Not on your wishlist:", id)
		return nil
	}
	a.wishlist.Remove(id)
	printlnFn("Removed from wishlist.")
	return nil
}

// Wishlist lists the saved items in the order they were added, with the
// running total.
func (a *App) Wishlist(ctx context.Context) error {
	items := a.wishlist.List()
	if len(items) == 0 {
		fmt.Println("Your wishlist is empty. 'wish <id>' to add something.")
		return nil
	}

	for _, item := range items {
		fmt.Printf("%-12s %-24s INR %d\n", item.ID, item.Name, item.PriceINR)
	}
	fmt.Printf("Total: INR %d\n", a.wishlist.TotalINR())
	if a.isLoggedIn() {
		fmt.Println("'checkout' when you are ready.")
	} else {
		fmt.Println("Sign in to check out.")
	}
	return nil
}
