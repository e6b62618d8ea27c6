// envcheck prints which mail, payment and database settings are present in
// the environment. Diagnostic only; it never prints the values themselves.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var keys = []string{
	"POSTGRES_DSN",
	"JWT_SECRET",
	"SMTP_HOST",
	"SMTP_PORT",
	"EMAIL_USER",
	"EMAIL_PASS",
	"EMAIL_FROM",
	"RAZORPAY_KEY_ID",
	"RAZORPAY_KEY_SECRET",
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file loaded:", err)
	} else {
		fmt.Println("loaded .env")
	}

	for _, k := range keys {
		if os.Getenv(k) != "" {
			fmt.Printf("%-22s EXISTS\n", k)
		} else {
			fmt.Printf("%-22s MISSING\n", k)
		}
	}

	if os.Getenv("EMAIL_USER") == "" || os.Getenv("EMAIL_PASS") == "" {
		fmt.Println("\nmail: order notifications will be skipped")
	}
	if os.Getenv("RAZORPAY_KEY_ID") == "" || os.Getenv("RAZORPAY_KEY_SECRET") == "" {
		fmt.Println("payment: gateway not configured")
	}
}
