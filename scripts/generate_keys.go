//go:build ignore

// Generates random keys for API authentication.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func mustKey(length int, label string) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		fmt.Fprintf(os.Stderr, "generating %s: %v\n", label, err)
		os.Exit(1)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func main() {
	fmt.Println("=== Box Picker Key Generator ===")
	fmt.Println()

	jwtSecret := mustKey(32, "JWT secret")
	apiKey := mustKey(24, "API key")

	// Hash the API key so only the hash needs to live in the environment.
	apiKeyHash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashing API key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# JWT Configuration (protects PUT /api/boxes)")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API Key (hand the plain key to clients, keep only the hash server-side)")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Printf("API_KEY_HASHES=%s\n", string(apiKeyHash))
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- Store production keys in a secure secret manager")
}
