package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"savora/services/storage"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// signedURLTTL bounds how long an issued signed media URL stays valid.
const signedURLTTL = 15 * time.Minute

// allowedBuckets defines permitted buckets for media uploads.
var allowedBuckets = map[string]bool{
	"videos":     true,
	"thumbnails": true,
	"avatars":    true,
}

// UploadFile accepts a multipart upload, stages it in a temp file and
// pushes it to the media store. The response carries the public URL the
// client embeds in the item it creates next.
func UploadFile(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := c.Param("bucket")
		if !allowedBuckets[bucket] {
			utils.JSONError(c, http.StatusBadRequest, "invalid bucket", "allowed values are 'videos', 'thumbnails' and 'avatars'")
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to stage file", err.Error())
			return
		}
		defer os.Remove(tempFilePath)

		publicID, err := svc.UploadFile(c.Request.Context(), tempFilePath, "savora/"+bucket)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to upload file", err.Error())
			return
		}

		resourceType := "image"
		if bucket == "videos" {
			resourceType = "video"
		}
		downloadURL, err := svc.GetDownloadURL(c.Request.Context(), resourceType, publicID, 0)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to construct download URL", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"publicID": publicID,
			"url":      downloadURL,
		})
	}
}

// DeleteFile removes a stored asset by its public ID, e.g. after the
// client abandons a draft upload.
func DeleteFile(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PublicID string `json:"public_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "public_id is required", err.Error())
			return
		}
		if err := svc.DeleteFile(c.Request.Context(), req.PublicID); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to delete file", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// GetSignedURL issues a short-lived signed URL for an authenticated
// asset, so raw uploads never need a public delivery path.
func GetSignedURL(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		publicID := c.Query("public_id")
		if publicID == "" {
			utils.JSONError(c, http.StatusBadRequest, "public_id is required", "")
			return
		}
		resourceType := c.DefaultQuery("type", "image")

		url, err := svc.GetSecureDownloadURL(c.Request.Context(), resourceType, publicID, signedURLTTL)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to sign URL", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"url":        url,
			"expires_in": int(signedURLTTL.Seconds()),
		})
	}
}
