package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"docstyle/internal/model"
	"docstyle/internal/service"
)

// Multipart field names accepted by Upload, in lookup order.
var uploadFields = []string{"document", "file"}

type uploadResponse struct {
	Success  bool            `json:"success"`
	Document *model.Document `json:"document"`
}

type analyzeRequest struct {
	Content    string `json:"content"`
	DocumentID string `json:"documentId"`
}

type analyzeResponse struct {
	Success bool `json:"success"`
	*service.AnalysisResult
}

type visualSpecsRequest struct {
	Analysis   json.RawMessage `json:"analysis" swaggertype:"object"`
	DocumentID string          `json:"documentId"`
}

type visualSpecsResponse struct {
	Success bool `json:"success"`
	*service.DesignResult
}

// Upload stores and parses an uploaded document.
//
// @Summary  Upload a document
// @Tags     pipeline
// @Accept   multipart/form-data
// @Produce  json
// @Param    document formData file true "A .docx, .txt or .pdf file (field \"file\" is also accepted)"
// @Success  200 {object} uploadResponse
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /upload [post]
func Upload(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh := formFile(c)
		if fh == nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", service.MsgNoFile)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), service.UploadInput{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Body:        f,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(uploadResponse{Success: true, Document: doc})
	}
}

func formFile(c *fiber.Ctx) *multipart.FileHeader {
	for _, field := range uploadFields {
		if fh, err := c.FormFile(field); err == nil {
			return fh
		}
	}
	return nil
}

// Analyze classifies document content with the AI analyzer.
//
// @Summary  Analyze document content
// @Tags     pipeline
// @Accept   json
// @Produce  json
// @Param    body body analyzeRequest true "Document content and id"
// @Success  200 {object} analyzeResponse
// @Failure  400 {object} errorPayload
// @Failure  429 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /analyze [post]
func Analyze(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req analyzeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		res, err := svc.Analyze(c.UserContext(), req.DocumentID, req.Content)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(analyzeResponse{Success: true, AnalysisResult: res})
	}
}

// VisualSpecs turns an analysis into visual specs and generated styles.
//
// @Summary  Generate visual specs and CSS
// @Tags     pipeline
// @Accept   json
// @Produce  json
// @Param    body body visualSpecsRequest true "Analysis and document id"
// @Success  200 {object} visualSpecsResponse
// @Failure  400 {object} errorPayload
// @Failure  429 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /visual-specs [post]
func VisualSpecs(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req visualSpecsRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		}

		res, err := svc.Design(c.UserContext(), req.DocumentID, req.Analysis)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(visualSpecsResponse{Success: true, DesignResult: res})
	}
}

// DocumentStatus reports pipeline progress for a document.
//
// @Summary  Pipeline status
// @Tags     pipeline
// @Produce  json
// @Param    id path string true "Document id returned by /upload"
// @Success  200 {object} status.Snapshot
// @Failure  404 {object} errorPayload
// @Router   /documents/{id}/status [get]
func DocumentStatus(svc service.PipelineService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := url.PathUnescape(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		snap, err := svc.Status(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(snap)
	}
}
