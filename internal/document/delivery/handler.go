package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"officeflow-backend/internal/document/domain"
	"officeflow-backend/internal/document/usecase"

	"github.com/gin-gonic/gin"
)

const defaultUserID = 1

// DocumentHandler handles document-related HTTP requests.
type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documentUsecase: documentUsecase}
}

// ListDocuments returns all documents.
// GET /api/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	documents, err := h.documentUsecase.ListDocuments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(documents), "documents": documents})
}

// UploadDocument stores a multipart file upload and creates its record.
// POST /api/documents
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	document, err := h.documentUsecase.Upload(usecase.UploadInput{
		Filename:   fileHeader.Filename,
		Size:       fileHeader.Size,
		UploadedBy: defaultUserID,
		Tags:       tags,
		Content:    src,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, document)
}

// GetDocumentByID returns a document record.
// GET /api/documents/:id
func (h *DocumentHandler) GetDocumentByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	document, err := h.documentUsecase.GetDocumentByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, document)
}

// DownloadDocument streams the stored file.
// GET /api/documents/:id/download
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	document, err := h.documentUsecase.GetDocumentByID(id)
	if err == nil {
		_, err = h.documentUsecase.ResolveFile(id)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		case errors.Is(err, domain.ErrFileMissing):
			c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.FileAttachment(document.FilePath, document.Name)
}

// DeleteDocument removes the record and its file.
// DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.documentUsecase.DeleteDocument(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Document deleted"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}
