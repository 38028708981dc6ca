// Command sessiontoken mints a development session cookie value signed with
// JWT_SECRET, for use as the access_token cookie.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/polly/internal/adapters/session/jwt"
	"github.com/vncsmyrnk/polly/internal/core/domain"
)

func main() {
	userID := flag.String("user", "", "user id placed in the token subject")
	email := flag.String("email", "", "optional email claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if *userID == "" {
		log.Fatal("-user is required")
	}

	token, err := jwt.NewManager(secret).Issue(domain.User{ID: *userID, Email: *email}, *ttl)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
