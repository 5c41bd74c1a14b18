package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

func inArray[T comparable](val T, array []T) bool {
	for _, v := range array {
		if val == v {
			return true
		}
	}
	return false
}

// Upload stores the file under baseDir/folder with a timestamped name and
// returns the stored path. Only image and spreadsheet uploads are accepted.
func Upload(file *multipart.FileHeader, baseDir, folder string) (path string, err error) {
	if file == nil {
		return "", nil
	}
	targetPath := filepath.Join(baseDir, folder)

	expectedContentType := []string{
		"image/jpeg",
		"image/png",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-excel",
	}

	incomeContentType := file.Header.Get("Content-Type")
	if !inArray(incomeContentType, expectedContentType) {
		return "", fmt.Errorf("invalid file type, expected: %v, got: %s", expectedContentType, incomeContentType)
	}

	if _, err := os.Stat(targetPath); errors.Is(err, os.ErrNotExist) {
		if err = os.MkdirAll(targetPath, os.ModePerm); err != nil {
			return "", err
		}
	}

	storedPath := filepath.Join(targetPath, time.Now().Format(time.RFC3339)+"-"+file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			log.Println("file upload src.Close() error:", closeErr)
		}
	}()

	out, err := os.Create(storedPath)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			log.Println("file upload out.Close() error:", closeErr)
		}
	}()

	if _, err = io.Copy(out, src); err != nil {
		return "", err
	}

	return storedPath, nil
}
