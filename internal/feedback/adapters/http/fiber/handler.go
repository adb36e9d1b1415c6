package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"feedback-service/internal/feedback/core/domain"
	"feedback-service/internal/feedback/core/usecase"
	"feedback-service/internal/result"
)

type CreateFeedbackUseCase interface {
	Execute(ctx context.Context, in usecase.CreateFeedbackInput) result.Of[*domain.Feedback]
}

type QueryFeedbackUseCase interface {
	GetFeedbacks(ctx context.Context) result.Of[[]*domain.Feedback]
	GetFeedback(ctx context.Context, id string) result.Of[*domain.Feedback]
	GetFeedbacksByEvent(ctx context.Context, eventID string) result.Of[[]*domain.Feedback]
}

type FeedbackHandler struct {
	createUC CreateFeedbackUseCase
	queryUC  QueryFeedbackUseCase
	validate *validator.Validate
}

func NewFeedbackHandler(createUC CreateFeedbackUseCase, queryUC QueryFeedbackUseCase) *FeedbackHandler {
	v := validator.New()
	// report fields by their wire name, not the Go struct name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FeedbackHandler{
		createUC: createUC,
		queryUC:  queryUC,
		validate: v,
	}
}

// ListFeedbacks godoc
// @Summary List all feedbacks
// @Description Returns every feedback record
// @Tags Feedbacks
// @Produce json
// @Success 200 {object} FeedbackListEnvelope
// @Failure 500 {object} FeedbackListEnvelope
// @Router /api/feedbacks [get]
func (h *FeedbackHandler) ListFeedbacks(c *fiber.Ctx) error {
	res := h.queryUC.GetFeedbacks(c.UserContext())
	if !res.Succeeded {
		return c.Status(http.StatusInternalServerError).JSON(listFailure(res.Error))
	}
	return c.Status(http.StatusOK).JSON(listSuccess(res.Value))
}

// GetFeedback godoc
// @Summary Get one feedback by id
// @Tags Feedbacks
// @Produce json
// @Param id path string true "Feedback id"
// @Success 200 {object} FeedbackEnvelope
// @Failure 404 {object} FeedbackEnvelope
// @Router /api/feedbacks/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *fiber.Ctx) error {
	res := h.queryUC.GetFeedback(c.UserContext(), c.Params("id"))
	if !res.Succeeded {
		return c.Status(http.StatusNotFound).JSON(itemFailure(res.Error))
	}
	return c.Status(http.StatusOK).JSON(itemSuccess(res.Value))
}

// ListFeedbacksByEvent godoc
// @Summary List feedbacks for one event
// @Tags Feedbacks
// @Produce json
// @Param eventId path string true "Event id"
// @Success 200 {object} FeedbackListEnvelope
// @Failure 500 {object} FeedbackListEnvelope
// @Router /api/feedbacks/event/{eventId} [get]
func (h *FeedbackHandler) ListFeedbacksByEvent(c *fiber.Ctx) error {
	res := h.queryUC.GetFeedbacksByEvent(c.UserContext(), c.Params("eventId"))
	if !res.Succeeded {
		return c.Status(http.StatusInternalServerError).JSON(listFailure(res.Error))
	}
	return c.Status(http.StatusOK).JSON(listSuccess(res.Value))
}

// CreateFeedback godoc
// @Summary Submit feedback for an event
// @Description Validates the payload, persists a new feedback record and returns it
// @Tags Feedbacks
// @Accept json
// @Produce json
// @Param request body CreateFeedbackRequest true "Feedback payload"
// @Success 200 {object} FeedbackEnvelope
// @Failure 400 {object} FeedbackEnvelope
// @Failure 500 {object} FeedbackEnvelope
// @Router /api/feedbacks [post]
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var req CreateFeedbackRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(itemFailure("invalid request body"))
	}

	// Range and required constraints are enforced here so invalid input
	// never reaches the usecase.
	if err := h.validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(itemFailure(validationMessage(err)))
	}

	in := usecase.CreateFeedbackInput{
		EventID:            req.EventID,
		EventName:          req.EventName,
		UserID:             req.UserID,
		UserName:           req.UserName,
		Content:            req.Content,
		Rating:             req.Rating,
		IsAnonymous:        req.IsAnonymous,
		CategoryID:         req.CategoryID,
		CategoryName:       req.CategoryName,
		VenueRating:        req.VenueRating,
		LineupRating:       req.LineupRating,
		SoundRating:        req.SoundRating,
		OrganizationRating: req.OrganizationRating,
		CrowdRating:        req.CrowdRating,
		ValueRating:        req.ValueRating,
	}

	res := h.createUC.Execute(c.UserContext(), in)
	if !res.Succeeded {
		return c.Status(http.StatusInternalServerError).JSON(itemFailure(res.Error))
	}

	return c.Status(http.StatusOK).JSON(itemSuccess(res.Value))
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s must be between 1 and 5", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}

func toFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           f.ID,
		EventID:      f.EventID,
		EventName:    f.EventName,
		UserID:       f.UserID,
		UserName:     f.UserName,
		Content:      f.Content,
		Rating:       f.Rating,
		CategoryID:   f.CategoryID,
		CategoryName: f.CategoryName,
		CreatedAt:    f.CreatedAt,
		IsAnonymous:  f.IsAnonymous,
	}
}

func itemSuccess(f *domain.Feedback) FeedbackEnvelope {
	resp := toFeedbackResponse(f)
	return FeedbackEnvelope{Success: true, Result: &resp}
}

func itemFailure(msg string) FeedbackEnvelope {
	return FeedbackEnvelope{Success: false, Error: &msg}
}

func listSuccess(items []*domain.Feedback) FeedbackListEnvelope {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFeedbackResponse(f))
	}
	return FeedbackListEnvelope{Success: true, Result: out}
}

func listFailure(msg string) FeedbackListEnvelope {
	return FeedbackListEnvelope{Success: false, Error: &msg}
}
