// Command restore replaces the data file with its .bak sibling after
// the backup has been verified to parse. Use it when the server refuses
// to start because the data file is corrupt.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"

	"cardbox/storage"
)

func main() {
	godotenv.Load()

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		var err error
		dataFile, err = storage.DefaultPath()
		if err != nil {
			log.Fatal("Failed to resolve data file path:", err)
		}
	}

	bakFile := dataFile + ".bak"
	raw, err := os.ReadFile(bakFile)
	if err != nil {
		log.Fatalf("Failed to read backup %s: %v", bakFile, err)
	}

	var doc storage.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("Backup %s is not a valid data file, refusing to restore: %v", bakFile, err)
	}

	log.Printf("Backup looks valid: %d cards, %d projects, %d notes",
		len(doc.Cards), len(doc.Projects), len(doc.Notes))

	tmp := dataFile + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		os.Remove(tmp)
		log.Fatalf("Failed to stage restore: %v", err)
	}
	if err := os.Rename(tmp, dataFile); err != nil {
		os.Remove(tmp)
		log.Fatalf("Failed to restore %s: %v", dataFile, err)
	}

	log.Printf("Restored %s from %s", dataFile, bakFile)
}
