package handlers

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weatherly/weatherly-golang/internal/models"
)

const imageColumns = "image_id, filename, url, category, item_name, type, created_at"

// allowedImageExtensions is the upload whitelist. Anything else is rejected
// before the file touches disk.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// GetAllImages is the handler for GET /images (public).
func (h *Handlers) GetAllImages(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + imageColumns + " FROM images ORDER BY created_at DESC")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	defer rows.Close()

	images := []*models.Image{}
	for rows.Next() {
		var img models.Image
		if err := scanImage(rows, &img); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan image row"})
			return
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating image rows"})
		return
	}

	c.JSON(http.StatusOK, images)
}

// UploadImage is the handler for POST /images (admin).
// The file is stored under the public outfits directory keyed by its
// original filename — a re-upload with the same name overwrites the old
// file (last write wins). File save and row insert are two sequential,
// non-transactional steps.
func (h *Handlers) UploadImage(c *gin.Context) {
	// 1. --- Read Form Fields ---
	category := c.PostForm("category")
	itemName := c.PostForm("item_name")
	imageType := c.PostForm("type")

	// 2. --- Get the File ---
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file uploaded"})
		return
	}

	filename := filepath.Base(file.Filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PNG, JPG, and JPEG allowed"})
		return
	}

	// 3. --- Ensure Upload Directory Exists ---
	if err := os.MkdirAll(h.Config.UploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	// 4. --- Save the File ---
	savePath := filepath.Join(h.Config.UploadDir, filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	// 5. --- Insert the Row ---
	image := &models.Image{
		ImageID:   uuid.New().String(),
		Filename:  filename,
		URL:       "/outfits/" + filename,
		Category:  category,
		ItemName:  itemName,
		Type:      imageType,
		CreatedAt: time.Now(),
	}

	query := "INSERT INTO images (" + imageColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?)"
	_, err = h.DB.Exec(query,
		image.ImageID,
		image.Filename,
		image.URL,
		image.Category,
		image.ItemName,
		image.Type,
		image.CreatedAt,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateImageInput defines the full-row JSON input for PUT /images/:id.
// The admin table sends every field back even when only one changed.
type UpdateImageInput struct {
	Filename string `json:"filename" binding:"required"`
	URL      string `json:"url" binding:"required"`
	Category string `json:"category" binding:"required"`
	ItemName string `json:"item_name" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

// UpdateImage is the handler for PUT /images/:id (admin).
func (h *Handlers) UpdateImage(c *gin.Context) {
	id := c.Param("id")

	var input UpdateImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := "UPDATE images SET filename = ?, url = ?, category = ?, item_name = ?, type = ? WHERE image_id = ?"
	if _, err := h.DB.Exec(query, input.Filename, input.URL, input.Category, input.ItemName, input.Type, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
		return
	}

	h.respondWithImage(c, id)
}

// PatchImageInput defines the partial-update JSON input for PATCH /images/:id.
// Only the two inline-editable fields are accepted.
type PatchImageInput struct {
	ItemName *string `json:"item_name"`
	Type     *string `json:"type"`
}

// PatchImage is the handler for PATCH /images/:id (admin).
// Updates item_name and/or type without requiring the rest of the row.
func (h *Handlers) PatchImage(c *gin.Context) {
	id := c.Param("id")

	var input PatchImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ItemName == nil && input.Type == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No editable field provided"})
		return
	}

	var sets []string
	var args []interface{}
	if input.ItemName != nil {
		if strings.TrimSpace(*input.ItemName) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field cannot be empty"})
			return
		}
		sets = append(sets, "item_name = ?")
		args = append(args, *input.ItemName)
	}
	if input.Type != nil {
		if strings.TrimSpace(*input.Type) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field cannot be empty"})
			return
		}
		sets = append(sets, "type = ?")
		args = append(args, *input.Type)
	}
	args = append(args, id)

	query := "UPDATE images SET " + strings.Join(sets, ", ") + " WHERE image_id = ?"
	if _, err := h.DB.Exec(query, args...); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
		return
	}

	h.respondWithImage(c, id)
}

// DeleteImage is the handler for DELETE /images/:id (admin).
// Only the row is removed; the stored file stays on disk so previously
// served URLs keep resolving.
func (h *Handlers) DeleteImage(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.DB.Exec("DELETE FROM images WHERE image_id = ?", id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// respondWithImage reads a row back after a mutation. A missing id renders
// as a null body, mirroring the no-op contract of the suggestion endpoints.
func (h *Handlers) respondWithImage(c *gin.Context, id string) {
	var img models.Image
	row := h.DB.QueryRow("SELECT "+imageColumns+" FROM images WHERE image_id = ?", id)
	if err := scanImage(row, &img); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch updated image"})
		return
	}

	c.JSON(http.StatusOK, img)
}

func scanImage(row scanner, img *models.Image) error {
	return row.Scan(
		&img.ImageID,
		&img.Filename,
		&img.URL,
		&img.Category,
		&img.ItemName,
		&img.Type,
		&img.CreatedAt,
	)
}
