// cmd/hashpw/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/coupledelight/shop-api/internal/config"
	"github.com/coupledelight/shop-api/internal/pkg/auth"
)

// hashpw prints a bcrypt hash for seeding or resetting an account by hand.
// The cost comes from BCRYPT_COST like the API's own hashing.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./cmd/hashpw <password>")
	}
	password := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	passwords := auth.NewPasswordManager(cfg.Security.BcryptCost)
	hash, err := passwords.HashPassword(password)
	if err != nil {
		log.Fatalf("Error generating hash: %v", err)
	}

	if err := passwords.VerifyPassword(password, hash); err != nil {
		log.Fatalf("Hash verification failed: %v", err)
	}

	fmt.Println(hash)
}
