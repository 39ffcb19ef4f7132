// Command authkit runs a development server exposing the session debug page
// and a readiness probe over the shared database clients.
package main

import (
	"context"
	"log"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
