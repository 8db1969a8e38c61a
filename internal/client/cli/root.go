package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userEmail != "" {
		s = a.userEmail
	} else {
		s = "guest"
	}
	if n := a.wishlist.Len(); n > 0 {
		s = fmt.Sprintf("%s, %d wished", s, n)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to AR Shopsy (type 'help' for commands)")

	if a.isLoggedIn() {
		log.Printf("Resumed session for %s", a.userEmail)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
