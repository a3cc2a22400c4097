// Command staff grants or revokes the staff flag on a user account.
// Staff status gates category management in the API.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"
)

func main() {
	username := flag.String("user", "", "username to modify")
	revoke := flag.Bool("revoke", false, "revoke staff instead of granting it")
	flag.Parse()

	if *username == "" {
		log.Fatal("usage: staff -user <username> [-revoke]")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var user models.User
	if err := db.Where("username = ?", *username).First(&user).Error; err != nil {
		log.Fatalf("User %q not found: %v", *username, err)
	}

	user.IsStaff = !*revoke
	if err := db.Model(&user).Update("is_staff", user.IsStaff).Error; err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	if user.IsStaff {
		log.Printf("Granted staff to %s", user.Username)
	} else {
		log.Printf("Revoked staff from %s", user.Username)
	}
}
