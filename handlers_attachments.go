package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cibdesk/interlinkages_backend/config"
	"github.com/cibdesk/interlinkages_backend/models"
	"github.com/cibdesk/interlinkages_backend/utils"
	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxAttachmentFilename = 255

func attachmentsRoot() string {
	dir := strings.TrimSpace(os.Getenv("ATTACHMENTS_DIR"))
	if dir == "" {
		dir = "./data/attachments"
	}
	return dir
}

// secureFilename keeps only the base name and a safe character set so a
// client-supplied name can never escape the attachments directory.
func secureFilename(name string) string {
	name = filepath.Base(name)
	var out strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			out.WriteRune(r)
		}
	}
	cleaned := strings.Trim(out.String(), "._")
	if cleaned == "" {
		cleaned = "attachment"
	}
	if len(cleaned) > maxAttachmentFilename {
		ext := filepath.Ext(cleaned)
		// an extension at or over the limit cannot be preserved
		if len(ext) >= maxAttachmentFilename {
			ext = ""
		}
		cleaned = cleaned[:maxAttachmentFilename-len(ext)] + ext
	}
	return cleaned
}

func guessMimeType(filename string, headerType string) string {
	if headerType != "" && headerType != "application/octet-stream" {
		return headerType
	}
	if byExt := mime.TypeByExtension(filepath.Ext(filename)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

// POST /api/interlinkage-attachments/upload
//
// Multipart upload: file + interlinkage_id + optional description. The
// file lands under ATTACHMENTS_DIR/<interlinkage_id>/ and the row keeps
// a file:// storage uri. Name collisions get a timestamp suffix.
func uploadAttachmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_required"})
			return
		}
		ilID, err := strconv.Atoi(c.PostForm("interlinkage_id"))
		if err != nil || ilID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_interlinkage_id"})
			return
		}

		if _, err := utils.FetchLiveModel[models.Interlinkage](ctx, ilID); err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				respondNotFound(c, "interlinkage")
				return
			}
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}

		filename := secureFilename(fileHeader.Filename)
		targetDir := filepath.Join(attachmentsRoot(), strconv.Itoa(ilID))
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}

		targetPath := filepath.Join(targetDir, filename)
		if _, err := os.Stat(targetPath); err == nil {
			ext := filepath.Ext(filename)
			stem := strings.TrimSuffix(filename, ext)
			filename = stem + "_" + strconv.FormatInt(time.Now().Unix(), 10) + ext
			targetPath = filepath.Join(targetDir, filename)
		}

		src, err := fileHeader.Open()
		if err != nil {
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}
		defer src.Close()

		dst, err := os.Create(targetPath)
		if err != nil {
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}
		hasher := sha256.New()
		size, err := io.Copy(dst, io.TeeReader(src, hasher))
		closeErr := dst.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(targetPath)
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}
		checksum := hex.EncodeToString(hasher.Sum(nil))

		mimeType := guessMimeType(filename, fileHeader.Header.Get("Content-Type"))
		if strings.HasPrefix(mimeType, "image/") {
			writeThumbnail(targetPath)
		}

		absPath, err := filepath.Abs(targetPath)
		if err != nil {
			absPath = targetPath
		}

		username, _ := utils.GetUsernameFromContext(ctx)
		attachment := models.InterlinkageAttachment{
			InterlinkageId: ilID,
			Filename:       filename,
			MimeType:       mimeType,
			StorageUri:     "file://" + absPath,
			Description:    c.PostForm("description"),
			CreatedBy:      username,
		}
		db := config.GetDB()
		if err := db.WithContext(ctx).Create(&attachment).Error; err != nil {
			os.Remove(targetPath)
			respondServerError(c, "attachments", "uploadAttachmentHandler", err)
			return
		}

		config.GetLogger().WithFields(logrus.Fields{
			"interlinkage_id": ilID,
			"filename":        filename,
			"size":            size,
		}).Info("[attachment.upload]")

		c.JSON(http.StatusCreated, gin.H{
			"attachment": attachment,
			"size":       size,
			"checksum":   checksum,
		})
	}
}

// best effort, an unreadable image never fails the upload
func writeThumbnail(imagePath string) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}
	thumbnail := imaging.Resize(img, 200, 0, imaging.Lanczos)

	ext := filepath.Ext(imagePath)
	thumbPath := strings.TrimSuffix(imagePath, ext) + "_thumb.jpg"
	_ = imaging.Save(thumbnail, thumbPath)
}

// GET /api/interlinkage-attachments/:id/download
func downloadAttachmentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			respondInvalidArgs(c, "id must be an integer")
			return
		}

		attachment, err := utils.FetchLiveModel[models.InterlinkageAttachment](ctx, id)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
				return
			}
			respondServerError(c, "attachments", "downloadAttachmentHandler", err)
			return
		}

		storagePath := strings.TrimPrefix(attachment.StorageUri, "file://")
		absPath, err := filepath.Abs(storagePath)
		if err != nil {
			respondServerError(c, "attachments", "downloadAttachmentHandler", err)
			return
		}
		root, err := filepath.Abs(attachmentsRoot())
		if err != nil {
			respondServerError(c, "attachments", "downloadAttachmentHandler", err)
			return
		}
		if absPath != root && !strings.HasPrefix(absPath, root+string(filepath.Separator)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden_path"})
			return
		}
		if _, err := os.Stat(absPath); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "file_missing"})
			return
		}

		if attachment.MimeType != "" {
			c.Writer.Header().Set("Content-Type", attachment.MimeType)
		}
		c.FileAttachment(absPath, attachment.Filename)
	}
}
