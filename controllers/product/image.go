package productcontroller

import (
	"fmt"
	"image/color"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var filenameSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// sanitizeFilename lowercases the product name and collapses anything
// that is not alphanumeric into single dashes.
func sanitizeFilename(name string) string {
	s := filenameSanitizer.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// resizeToCanvas letterboxes the source onto a white canvas of exactly
// the requested dimensions, matching how the storefront renders tiles.
func resizeToCanvas(srcPath, dstPath string, width, height int) error {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	fitted := imaging.Fit(img, width, height, imaging.Lanczos)
	canvas := imaging.New(width, height, color.White)
	canvas = imaging.PasteCenter(canvas, fitted)
	return imaging.Save(canvas, dstPath)
}

// saveProductImages stores the uploaded file, then derives the 800x800
// main image and the 200x200 thumbnail from it. Runs before the product
// row is written so a failed upload never leaves a half-imaged product.
func saveProductImages(uploadDir, productName string, file *multipart.FileHeader, save func(*multipart.FileHeader, string) error) (string, string, error) {
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return "", "", fmt.Errorf("images only (jpg, jpeg, png, gif)")
	}

	base := fmt.Sprintf("%s-%s", sanitizeFilename(productName), uuid.NewString()[:8])
	mainImage := base + ext
	thumbnail := base + "-thumb" + ext

	tempPath := filepath.Join(uploadDir, "temp-"+base+ext)
	if err := save(file, tempPath); err != nil {
		return "", "", fmt.Errorf("failed to save image: %w", err)
	}
	defer os.Remove(tempPath)

	if err := resizeToCanvas(tempPath, filepath.Join(uploadDir, mainImage), 800, 800); err != nil {
		return "", "", err
	}
	if err := resizeToCanvas(tempPath, filepath.Join(uploadDir, thumbnail), 200, 200); err != nil {
		os.Remove(filepath.Join(uploadDir, mainImage))
		return "", "", err
	}

	return mainImage, thumbnail, nil
}

// removeProductImages unlinks a product's image files. Best effort:
// a missing file is not worth failing a catalog operation over.
func removeProductImages(uploadDir string, filenames ...string) {
	for _, name := range filenames {
		if name == "" {
			continue
		}
		_ = os.Remove(filepath.Join(uploadDir, filepath.Base(name)))
	}
}
