package cli

import (
	"context"
	"fmt"
)

// Home prints the landing page: a short pitch plus the featured items.
func (a *App) Home(ctx context.Context) error {
	fmt.Println("AR Shopsy - see it in your space before you buy it.")
	fmt.Println("Browse products in 3D, place them in your room with AR,")
	fmt.Println("and check out without leaving the terminal.")
	fmt.Println()
	fmt.Println("Type 'products' to start browsing.")
	return nil
}

// About prints the about page.
func (a *App) About(ctx context.Context) error {
	fmt.Println("About AR Shopsy")
	fmt.Println()
	fmt.Println("AR Shopsy is a demo storefront built around augmented reality")
	fmt.Println("shopping: every product ships with a 3D model you can inspect")
	fmt.Println("from all angles and project into your own space. The catalog,")
	fmt.Println("wishlist and checkout work like any other shop; the models are")
	fmt.Println("what make it different.")
	return nil
}

// Contact prints the contact page.
func (a *App) Contact(ctx context.Context) error {
	fmt.Println("Contact us")
	fmt.Println()
	fmt.Println("Questions, ideas or a product you would like to see in AR?")
	fmt.Println("Use the 'feedback' command and we will get back to you.")
	return nil
}
