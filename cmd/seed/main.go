// Command seed provisions the schema and fills it with sample data:
// a handful of folders holding several files each. It wipes whatever
// is already in the tables, so never point it at real data.
package main

import (
	"context"
	"log"
	"math/rand"

	"github.com/google/uuid"

	"github.com/filedepot/backend/api/v1/database"
	"github.com/filedepot/backend/config"
)

const filesPerFolder = 5

var folderNames = []string{"Documents", "Pictures", "Music"}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Fixtures own these tables outright.
	if _, err := db.ExecContext(ctx, `TRUNCATE folders RESTART IDENTITY CASCADE`); err != nil {
		log.Fatalf("failed to reset tables: %v", err)
	}

	store := database.NewStore(db)

	totalFiles := 0
	for _, name := range folderNames {
		folder, err := store.CreateFolder(ctx, name)
		if err != nil {
			log.Fatalf("failed to seed folder %q: %v", name, err)
		}

		for i := 0; i < filesPerFolder; i++ {
			fileName := name + "-" + uuid.NewString() + ".bin"
			size := int64(rand.Intn(1 << 20)) // up to 1 MiB
			if _, err := store.CreateFile(ctx, folder.ID, fileName, size); err != nil {
				log.Fatalf("failed to seed file in folder %q: %v", name, err)
			}
			totalFiles++
		}
	}

	log.Printf("Seeded %d folders with %d files", len(folderNames), totalFiles)
}
