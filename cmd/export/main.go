// Exports the catalog from Postgres into a snapshot directory that the REST
// service can load without a database (CATALOG_SOURCE=file).
package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"

	"bytemart-search-be/internal/entity"
	"bytemart-search-be/pkg/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	pgxvec "github.com/pgvector/pgvector-go/pgx"
)

func main() {
	outDir := flag.String("out", "./snapshot", "snapshot output directory")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		log.Fatalf("Error: Failed to connect: %v", err)
	}
	defer conn.Close(ctx)

	if err := pgxvec.RegisterTypes(ctx, conn); err != nil {
		log.Fatalf("Error: Failed to register vector types: %v", err)
	}

	rows, err := conn.Query(ctx, `
		SELECT id, description, price, rating, rating_count, image_path,
		       combined_embedding::real[], text_embedding::real[]
		FROM catalog_products ORDER BY id ASC`)
	if err != nil {
		log.Fatalf("Error: Query failed: %v", err)
	}
	defer rows.Close()

	var items []entity.CatalogItem
	var combined, text [][]float32
	for rows.Next() {
		var item entity.CatalogItem
		var cv, tv []float32
		if err := rows.Scan(&item.Index, &item.Description, &item.Price, &item.Rating,
			&item.RatingCount, &item.ImagePath, &cv, &tv); err != nil {
			log.Fatalf("Error: Scan failed: %v", err)
		}
		items = append(items, item)
		combined = append(combined, cv)
		text = append(text, tv)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Error: Row iteration failed: %v", err)
	}
	if len(items) == 0 {
		log.Fatal("Error: catalog_products is empty, nothing to export")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Error: Failed to create output directory: %v", err)
	}

	metaRaw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Fatalf("Error: Failed to marshal metadata: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*outDir, catalog.MetaFile), metaRaw, 0o644); err != nil {
		log.Fatalf("Error: Failed to write metadata: %v", err)
	}

	writeVectors(filepath.Join(*outDir, catalog.CombinedVecsFile), combined)
	writeVectors(filepath.Join(*outDir, catalog.TextVecsFile), text)

	log.Printf("✅ Exported %d items to %s", len(items), *outDir)
}

func writeVectors(path string, vectors [][]float32) {
	dim := len(vectors[0])
	buf := make([]byte, 8+len(vectors)*dim*4)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(vectors)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(dim))
	off := 8
	for _, vec := range vectors {
		if len(vec) != dim {
			log.Fatalf("Error: inconsistent embedding dimension in %s", filepath.Base(path))
		}
		for _, v := range vec {
			binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v))
			off += 4
		}
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		log.Fatalf("Error: Failed to write %s: %v", filepath.Base(path), err)
	}
}
