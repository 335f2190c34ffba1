package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
)

// freeTierLimit caps resumes per non-premium account.
const freeTierLimit = 3

type Handler struct {
	users   *repository.UsersRepo
	resumes *repository.ResumesRepo
	secret  []byte
	ttl     time.Duration
}

func NewHandler(users *repository.UsersRepo, resumes *repository.ResumesRepo, secret []byte, ttl time.Duration) *Handler {
	return &Handler{users: users, resumes: resumes, secret: secret, ttl: ttl}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)
	api.Get("/auth/verify-email", h.VerifyEmail)
	api.Get("/auth/health", h.Health)

	resumes := api.Group("/resume", h.AuthRequired)
	resumes.Get("/", h.ListResumes)
	resumes.Post("/", h.CreateResume)
	resumes.Get("/:id", h.GetResume)
	resumes.Put("/:id", h.UpdateResume)
	resumes.Delete("/:id", h.DeleteResume)

	user := api.Group("/user", h.AuthRequired)
	user.Get("/stats", h.UserStats)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("Auth service is running!")
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	list, err := h.resumes.ListByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list resumes"})
	}
	return c.JSON(list)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)
	res, err := h.resumes.GetByID(c.Context(), c.Params("id"), userID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	return c.JSON(res)
}

type createResumeReq struct {
	Title string `json:"title"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req createResumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Title == "" {
		req.Title = "Untitled Resume"
	}

	user, err := h.users.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load account"})
	}
	if !user.IsPremium {
		n, err := h.resumes.CountByUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create resume"})
		}
		if n >= freeTierLimit {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "free accounts are limited to 3 resumes",
			})
		}
	}

	res, err := h.resumes.Create(c.Context(), userID, req.Title)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create resume"})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var up domain.ResumeUpdate
	if err := c.BodyParser(&up); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	err := h.resumes.Update(c.Context(), c.Params("id"), userID, up)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update resume"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	err := h.resumes.Delete(c.Context(), c.Params("id"), userID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete resume"})
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (h *Handler) UserStats(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	user, err := h.users.GetByID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load account"})
	}
	total, err := h.resumes.CountByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load stats"})
	}
	templates, err := h.resumes.TemplatesByUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load stats"})
	}

	return c.JSON(domain.UserStats{
		Email:         user.Email,
		FirstName:     user.FirstName,
		TotalResumes:  total,
		Templates:     templates,
		IsPremium:     user.IsPremium,
		EmailVerified: user.IsEmailVerified,
		MemberSince:   user.CreatedAt,
	})
}
