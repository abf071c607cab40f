package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	jwtmw "crypto_backend/internal/platform/jwt"
)

// APIクライアント用のトークンを発行します。
//
//	JWT_SECRET=... go run ./cmd/token -subject dashboard -ttl 720h
func main() {
	subject := flag.String("subject", "", "client name stored in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	gen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), *ttl)
	tok, err := gen.GenerateToken(*subject)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tok)
}
