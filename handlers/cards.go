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

func GetCards(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var params models.CardQueryParams
		if err := c.ShouldBindQuery(&params); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if params.Status != "" && !models.Status(params.Status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}

		ctx := c.Request.Context()
		cards, err := db.ListCards(ctx, params)
		if err != nil {
			log.Printf("ListCards error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cards"})
			return
		}

		c.JSON(http.StatusOK, models.CardsResponse{
			Cards: cards,
			Total: len(cards),
		})
	}
}

func AddCard(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		req.Title = strings.TrimSpace(req.Title)
		req.Prompt = strings.TrimSpace(req.Prompt)
		req.Project = strings.TrimSpace(req.Project)
		if req.Title == "" || req.Prompt == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and prompt are required"})
			return
		}

		ctx := c.Request.Context()
		card, err := db.AddCard(ctx, req)
		if err != nil {
			log.Printf("AddCard error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add card"})
			return
		}

		c.JSON(http.StatusCreated, card)
	}
}

func UpdateCard(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req models.UpdateCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}
		if req.Prompt != nil && strings.TrimSpace(*req.Prompt) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prompt cannot be empty"})
			return
		}
		if req.Status != nil && !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		ctx := c.Request.Context()
		card, err := db.UpdateCard(ctx, id, req)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
				return
			}
			log.Printf("UpdateCard error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update card"})
			return
		}

		c.JSON(http.StatusOK, card)
	}
}

func ToggleCard(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req models.ToggleCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		ctx := c.Request.Context()
		card, err := db.ToggleCard(ctx, id, req.Status)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
				return
			}
			log.Printf("ToggleCard error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle card"})
			return
		}

		c.JSON(http.StatusOK, card)
	}
}

func DeleteCard(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ctx := c.Request.Context()
		removed, err := db.DeleteCard(ctx, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
				return
			}
			log.Printf("DeleteCard error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete card"})
			return
		}

		c.JSON(http.StatusOK, removed)
	}
}
