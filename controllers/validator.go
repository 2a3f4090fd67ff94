package controllers

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/achraf-fouad/aura-scents/models"
	"github.com/achraf-fouad/aura-scents/services"
)

const (
	MaxLimit      = 100
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxUploadSize = 10 * 1024 * 1024 // 10MB per image
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// parsePaginationParams extracts and validates pagination parameters
func parsePaginationParams(ctx *gin.Context) (int, int) {
	page := DefaultPage
	limit := DefaultLimit

	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}
	return page, limit
}

// parseProductFilter reads the shop filter query parameters:
// category/intensity as comma-separated sets, minPrice/maxPrice as
// inclusive bounds.
func parseProductFilter(c *gin.Context) (services.ProductFilter, error) {
	var filter services.ProductFilter

	for _, raw := range strings.Split(c.Query("category"), ",") {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		if !models.IsValidCategory(v) {
			return filter, errors.New("invalid category value: " + v)
		}
		filter.Categories = append(filter.Categories, v)
	}

	for _, raw := range strings.Split(c.Query("intensity"), ",") {
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		if !models.IsValidIntensity(v) {
			return filter, errors.New("invalid intensity value: " + v)
		}
		filter.Intensities = append(filter.Intensities, v)
	}

	if minStr := strings.TrimSpace(c.Query("minPrice")); minStr != "" {
		parsed, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return filter, errors.New("invalid minPrice value")
		}
		filter.PriceMin = &parsed
	}
	if maxStr := strings.TrimSpace(c.Query("maxPrice")); maxStr != "" {
		parsed, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return filter, errors.New("invalid maxPrice value")
		}
		filter.PriceMax = &parsed
	}
	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return filter, errors.New("minPrice must be less than or equal to maxPrice")
	}

	return filter, nil
}

// parseSortKey defaults to popularity, matching the shop page.
func parseSortKey(c *gin.Context) (services.SortKey, error) {
	raw := strings.TrimSpace(c.Query("sort"))
	if raw == "" {
		return services.SortPopularity, nil
	}
	if !services.IsValidSortKey(raw) {
		return "", errors.New("invalid sort value")
	}
	return services.SortKey(raw), nil
}

// isValidImageType checks content type first, extension as fallback.
func isValidImageType(file *multipart.FileHeader) bool {
	if allowedImageTypes[file.Header.Get("Content-Type")] {
		return true
	}
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
