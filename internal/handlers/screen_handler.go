package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/services"
)

type ScreenHandler struct {
	screener    services.Screener
	maxFileSize int64
}

func NewScreenHandler(screener services.Screener, maxFileSize int64) *ScreenHandler {
	return &ScreenHandler{
		screener:    screener,
		maxFileSize: maxFileSize,
	}
}

// HandleScreen handles POST /screen. It accepts repeated "resumes" files plus
// optional comma-separated "technical_skills" and "soft_skills" fields, runs
// the whole batch through the pipeline and returns the ranked reports along
// with the per-document failures.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded. Please upload at least one PDF or DOCX file.",
		})
	}

	criteria := models.ScreeningCriteria{
		TechnicalSkills: splitSkills(form.Value["technical_skills"]),
		SoftSkills:      splitSkills(form.Value["soft_skills"]),
	}

	var docs []models.UploadedDocument
	for _, file := range files {
		if file.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("File %s too large. Max size: %d bytes", file.Filename, h.maxFileSize),
			})
		}

		content, err := readUpload(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to read %s: %v", file.Filename, err),
			})
		}

		docs = append(docs, models.UploadedDocument{
			Filename: file.Filename,
			Content:  content,
		})
	}

	result := h.screener.ScreenAll(c.Context(), docs, criteria)

	return c.JSON(models.ScreenResponse{
		RunID:    uuid.New().String(),
		Total:    len(docs),
		Analyzed: len(result.Reports),
		Reports:  result.Reports,
		Failures: result.Failures,
	})
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// splitSkills flattens repeated form values and splits each on commas,
// dropping empty entries.
func splitSkills(values []string) []string {
	var skills []string
	for _, value := range values {
		for _, skill := range strings.Split(value, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				skills = append(skills, skill)
			}
		}
	}
	return skills
}
