// Command reset drops and recreates the database schema.
// Development helper only: it deletes all data.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"accounts-be/internal/config"
	"accounts-be/internal/database"
)

func main() {
	cfg := config.Load()

	fmt.Print("This will delete ALL data. Continue? (yes/no): ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(strings.ToLower(answer)) != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.ResetSchema(db); err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}

	fmt.Println("Database reset complete")
}
