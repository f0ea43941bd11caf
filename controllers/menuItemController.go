package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"bistro-api/initializers"
	"bistro-api/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type CategoryInput struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title"`
}

type MenuItemInput struct {
	Title    string         `json:"title" binding:"required"`
	Price    float64        `json:"price" binding:"required,gte=0"`
	Featured bool           `json:"featured"`
	Tags     datatypes.JSON `json:"tags"`
	Category CategoryInput  `json:"category" binding:"required"`
}

// resolveCategory returns the category matching the slug, creating it when no
// row exists yet. An existing slug is never duplicated.
func resolveCategory(db *gorm.DB, input CategoryInput) (models.Category, error) {
	var category models.Category
	err := db.Where("slug = ?", input.Slug).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return category, err
	}

	category = models.Category{Slug: input.Slug, Title: input.Title}
	return category, db.Create(&category).Error
}

// Menu item handlers
func CreateMenuItem(ctx *gin.Context) {
	var input MenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := resolveCategory(initializers.DB, input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve category", err)
		return
	}

	menuItem := models.MenuItem{
		Title:      input.Title,
		Price:      input.Price,
		Featured:   input.Featured,
		Tags:       input.Tags,
		CategoryID: category.ID,
		Category:   category,
	}
	if err := initializers.DB.Create(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
		return
	}

	ctx.JSON(http.StatusCreated, menuItem)
}

// filterMenuItems applies the list filters so the page query and the total
// count stay in agreement.
func filterMenuItems(query *gorm.DB, search, slug string) *gorm.DB {
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if slug != "" {
		query = query.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.slug = ?", slug)
	}
	return query
}

func GetMenuItems(ctx *gin.Context) {
	var menuItems []models.MenuItem

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	offset := (page - 1) * limit

	search := ctx.Query("search")
	slug := ctx.Query("category")

	query := filterMenuItems(initializers.DB.Preload("Category"), search, slug)

	result := query.Limit(limit).Offset(offset).Find(&menuItems)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", result.Error)
		return
	}

	var count int64
	if err := filterMenuItems(initializers.DB.Model(&models.MenuItem{}), search, slug).Count(&count).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu items", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"menuItems": menuItems,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	result := initializers.DB.Preload("Category").First(&menuItem, menuItemId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}

// UpdateMenuItem replaces the whole item from the payload.
func UpdateMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var input MenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	category, err := resolveCategory(initializers.DB, input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve category", err)
		return
	}

	menuItem.Title = input.Title
	menuItem.Price = input.Price
	menuItem.Featured = input.Featured
	menuItem.Tags = input.Tags
	menuItem.CategoryID = category.ID
	menuItem.Category = category

	if err := initializers.DB.Save(&menuItem).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
		return
	}

	ctx.JSON(http.StatusOK, menuItem)
}

// PatchMenuItem applies only the fields present in the payload.
func PatchMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var input struct {
		Title    *string        `json:"title"`
		Price    *float64       `json:"price" binding:"omitempty,gte=0"`
		Featured *bool          `json:"featured"`
		Tags     datatypes.JSON `json:"tags"`
		Category *CategoryInput `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Featured != nil {
		updates["featured"] = *input.Featured
	}
	if input.Tags != nil {
		updates["tags"] = input.Tags
	}
	if input.Category != nil {
		category, err := resolveCategory(initializers.DB, *input.Category)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to resolve category", err)
			return
		}
		updates["category_id"] = category.ID
	}

	if len(updates) > 0 {
		if err := initializers.DB.Model(&menuItem).Updates(updates).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
			return
		}
	}

	initializers.DB.Preload("Category").First(&menuItem, menuItem.ID)
	ctx.JSON(http.StatusOK, menuItem)
}

func DeleteMenuItem(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	result := initializers.DB.Delete(&models.MenuItem{}, menuItemId)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadMenuItemImage(ctx *gin.Context) {
	menuItemId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
		return
	}

	var menuItem models.MenuItem
	if err := initializers.DB.First(&menuItem, menuItemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
		}
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No image uploaded", err)
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		respondWithError(ctx, http.StatusInternalServerError, "Missing storage configuration", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	// Unique filename to prevent overwrites
	uniqueFilename := fmt.Sprintf("%d-%s-%s", menuItemId, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	if err := initializers.DB.Model(&menuItem).Update("image_url", result.Location).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save image URL", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded successfully.",
		"url":     result.Location,
	})
}
