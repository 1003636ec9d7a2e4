package main

import (
	"fmt"
	"os"

	"github.com/gnaneshwar04/Movie-Ticket-Booking/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
