// Command generate_demo creates a demo catalog database with public domain
// Brazilian novels.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mrlokans/madr/internal/config"
	"github.com/mrlokans/madr/internal/database"
	"github.com/mrlokans/madr/internal/services"
)

const defaultDemoDatabasePath = "./demo/demo.db"

// demoAuthor holds a novelist and the books to attach to them.
type demoAuthor struct {
	Name  string
	Books []demoBook
}

type demoBook struct {
	Title string
	Year  int
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	saved, err := generate(*dbPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("Demo database generated successfully with %d books!", saved)
}

// generate recreates the database at dbPath, creating missing parent
// directories, and seeds it. It returns the number of books saved.
func generate(dbPath string) (int, error) {
	// Delete the existing demo database (and its WAL files) to start fresh
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
			return 0, fmt.Errorf("failed to remove existing demo database: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return 0, fmt.Errorf("failed to create demo database directory: %w", err)
	}

	db, err := database.NewDatabase(dbPath, "silent")
	if err != nil {
		return 0, fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	pagination := config.Pagination{DefaultSize: config.DefaultPageSize, MaxSize: config.MaxPageSize}
	authors := services.NewAuthorService(db.DB, pagination)
	books := services.NewBookService(db.DB, pagination)
	ctx := context.Background()

	var saved int
	for _, a := range getPublicDomainAuthors() {
		author, err := authors.Create(ctx, a.Name)
		if err != nil {
			log.Printf("Failed to save author %s: %v", a.Name, err)
			continue
		}

		for _, b := range a.Books {
			if _, err := books.Create(ctx, b.Title, b.Year, author.ID); err != nil {
				log.Printf("Failed to save book %s: %v", b.Title, err)
				continue
			}
			saved++
		}
		log.Printf("Saved: %s (%d books)", author.Name, len(a.Books))
	}

	return saved, nil
}

func getPublicDomainAuthors() []demoAuthor {
	return []demoAuthor{
		{
			Name: "Machado de Assis",
			Books: []demoBook{
				{"Ressurreição", 1872},
				{"A Mão e a Luva", 1874},
				{"Helena", 1876},
				{"Memórias Póstumas de Brás Cubas", 1881},
				{"Quincas Borba", 1891},
				{"Dom Casmurro", 1899},
				{"Esaú e Jacó", 1904},
				{"Memorial de Aires", 1908},
			},
		},
		{
			Name: "José de Alencar",
			Books: []demoBook{
				{"O Guarani", 1857},
				{"Lucíola", 1862},
				{"Iracema", 1865},
				{"Senhora", 1875},
			},
		},
		{
			Name: "Aluísio Azevedo",
			Books: []demoBook{
				{"O Mulato", 1881},
				{"Casa de Pensão", 1884},
				{"O Cortiço", 1890},
			},
		},
		{
			Name: "Lima Barreto",
			Books: []demoBook{
				{"Recordações do Escrivão Isaías Caminha", 1909},
				{"Triste Fim de Policarpo Quaresma", 1915},
				{"Clara dos Anjos", 1948},
			},
		},
		{
			Name: "Raul Pompeia",
			Books: []demoBook{
				{"O Ateneu", 1888},
			},
		},
		{
			Name: "Manuel Antônio de Almeida",
			Books: []demoBook{
				{"Memórias de um Sargento de Milícias", 1854},
			},
		},
	}
}
