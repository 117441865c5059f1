package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardbox/database"
	"cardbox/models"
)

func ListNotes(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cardID := c.Query("card_id")

		ctx := c.Request.Context()
		notes, err := db.ListNotes(ctx, cardID)
		if err != nil {
			log.Printf("ListNotes error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
			return
		}

		c.JSON(http.StatusOK, models.NotesResponse{
			Notes: notes,
			Total: len(notes),
		})
	}
}

func CreateNote(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		req.CardID = strings.TrimSpace(req.CardID)
		if req.Title == "" || req.CardID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cardId and title are required"})
			return
		}

		ctx := c.Request.Context()
		note, err := db.CreateNote(ctx, req)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
				return
			}
			log.Printf("CreateNote error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
			return
		}

		c.JSON(http.StatusCreated, note)
	}
}

func UpdateNote(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req models.UpdateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}

		ctx := c.Request.Context()
		note, err := db.UpdateNote(ctx, id, req)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			log.Printf("UpdateNote error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
			return
		}

		c.JSON(http.StatusOK, note)
	}
}

func DeleteNote(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx := c.Request.Context()
		removed, err := db.DeleteNote(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			log.Printf("DeleteNote error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
			return
		}

		c.JSON(http.StatusOK, removed)
	}
}
