// Command create-admin bootstraps the first API account.
//
//	go run ./cmd/create-admin -email admin@example.org -name "Admin" -password secret123
package main

import (
	"context"
	"flag"
	"log"

	"ngo-erp-api/config"
	"ngo-erp-api/models"
	"ngo-erp-api/store"
	"ngo-erp-api/utils"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "account email")
	name := flag.String("name", "Administrator", "display name")
	password := flag.String("password", "", "account password")
	role := flag.String("role", models.RoleAdmin, "account role (admin|staff)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("-email and -password are required")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatal("invalid email address")
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.OpenDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := store.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	users := store.New[models.User](db)
	user := models.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         *role,
		Status:       "active",
	}
	if err := users.Create(context.Background(), &user); err != nil {
		log.Fatal("Failed to create account:", err)
	}

	log.Printf("Created %s account %s (id %d)", user.Role, user.Email, user.ID)
}
