package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-parser/internal/models"
	"alfredoptarigan/resume-parser/internal/repositories"
	"alfredoptarigan/resume-parser/internal/services"
)

type ResumeHandler struct {
	resumeRepo  repositories.ResumeRepository
	storage     services.StorageService
	extractor   services.DocumentExtractor
	parser      services.ResumeParserService
	matcher     services.JobMatcherService
	maxFileSize int64
	validate    *validator.Validate
}

func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	storage services.StorageService,
	extractor services.DocumentExtractor,
	parser services.ResumeParserService,
	matcher services.JobMatcherService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:  resumeRepo,
		storage:     storage,
		extractor:   extractor,
		parser:      parser,
		matcher:     matcher,
		maxFileSize: maxFileSize,
		validate:    validator.New(),
	}
}

// HandleUpload handles POST /resumes/upload
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	resumeID := uuid.New()

	_, filePath, err := h.storage.SaveFile(file, resumeID.String())
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "File type not allowed. Allowed types: pdf, docx, doc, txt, jpg, jpeg, png",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save file: %v", err),
		})
	}

	log.Printf("📄 Extracting text from %s", file.Filename)
	text, err := h.extractor.ExtractText(filePath, file.Filename)
	if err != nil {
		h.removeStoredFile(filePath)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text: %v", err),
		})
	}

	log.Printf("🤖 Parsing resume %s with LLM", file.Filename)
	parsed := h.parser.Parse(c.UserContext(), text, file.Filename)

	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		h.removeStoredFile(filePath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to encode parsed payload",
		})
	}

	resume := models.Resume{
		ID:          resumeID,
		FileName:    file.Filename,
		FilePath:    filePath,
		RawText:     text,
		ParsedData:  parsedJSON,
		ProcessedAt: time.Now(),
		CreatedAt:   time.Now(),
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		h.removeStoredFile(filePath)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save resume record",
		})
	}

	log.Printf("💾 Resume %s processed and stored", resumeID)

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:                      resumeID.String(),
		Status:                  "success",
		Message:                 "Resume processed successfully",
		FileName:                file.Filename,
		EstimatedProcessingTime: 30,
	})
}

// HandleGetResume handles GET /resumes/:id
func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load resume",
		})
	}

	return c.JSON(buildParsedResponse(resume))
}

// HandleMatch handles POST /resumes/:id/match
func (h *ResumeHandler) HandleMatch(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	var job models.JobDescription
	if err := c.BodyParser(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&job); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: %v", err),
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load resume",
		})
	}

	// A corrupt stored payload degrades to an empty mapping; the matcher
	// still produces a structurally valid result.
	var resumeData map[string]any
	if len(resume.ParsedData) > 0 {
		if err := json.Unmarshal(resume.ParsedData, &resumeData); err != nil {
			log.Printf("⚠️  Corrupt parsed payload for resume %s: %v", resume.ID, err)
		}
	}

	log.Printf("🤖 Matching resume %s against %q", resume.ID, job.Title)
	result := h.matcher.Match(c.UserContext(), resume.ID.String(), resumeData, job)

	return c.JSON(result)
}

// HandleDelete handles DELETE /resumes/:id
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(resumeID)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load resume",
		})
	}

	h.removeStoredFile(resume.FilePath)

	if err := h.resumeRepo.Delete(resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete resume",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Resume deleted successfully",
	})
}

func (h *ResumeHandler) removeStoredFile(filePath string) {
	if err := h.storage.DeleteFile(filepath.Base(filePath)); err != nil {
		log.Printf("⚠️  Failed to delete stored file %s: %v", filePath, err)
	}
}
