// Package cli provides the interactive AR Shopsy command-line storefront.
//
// It wires configuration, the local session store, the storefront API client
// and an interactive REPL that mirrors the shop's pages: browse products,
// inspect their 3D models, keep a wishlist and check out.
//
// Key features:
//   - Register / Login / Logout against the storefront API
//   - Browse the catalog and view product details with AR hand-off
//   - Wishlist management with a running total
//   - Guided checkout with card, net banking, UPI and COD
//   - Feedback form relayed through the server
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
