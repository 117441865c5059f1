package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cardbox/database"
	"cardbox/handlers"
	"cardbox/launcher"
	"cardbox/middleware"
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

	// A corrupt data file is fatal: starting with an empty dataset here
	// would overwrite whatever the user still has on disk. Recover with
	// cmd/restore first.
	store, err := storage.Open(dataFile)
	if err != nil {
		log.Fatal("Failed to open data file:", err)
	}
	log.Printf("Using data file: %s", dataFile)

	db := database.New(store)
	l := launcher.New()

	uiOrigin := os.Getenv("UI_ORIGIN")
	if uiOrigin == "" {
		uiOrigin = "http://localhost:5173"
	}

	r := gin.Default()
	r.Use(middleware.CORS(uiOrigin))

	r.GET("/health", handlers.HealthCheck)

	r.GET("/cards", handlers.GetCards(db))
	r.POST("/cards", handlers.AddCard(db))
	r.PATCH("/cards/:id", handlers.UpdateCard(db))
	r.DELETE("/cards/:id", handlers.DeleteCard(db))
	r.POST("/cards/:id/toggle", handlers.ToggleCard(db))

	r.GET("/projects", handlers.ListProjects(db))
	r.POST("/projects", handlers.CreateProject(db))
	r.PATCH("/projects/:id", handlers.UpdateProject(db))
	r.DELETE("/projects/:id", handlers.DeleteProject(db))

	r.GET("/notes", handlers.ListNotes(db))
	r.POST("/notes", handlers.CreateNote(db))
	r.PATCH("/notes/:id", handlers.UpdateNote(db))
	r.DELETE("/notes/:id", handlers.DeleteNote(db))

	r.POST("/prompts/run", handlers.RunPrompt(l))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server starting on :" + port)
	r.Run(":" + port)
}
