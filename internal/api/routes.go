package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/monologue/domain/entities"
)

const serviceName = "monologue-server"

// MonologueGenerator runs the monologue pipeline for one topic
type MonologueGenerator interface {
	Generate(ctx context.Context, topic string) (*entities.Monologue, error)
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, generator MonologueGenerator, ttsProvider string, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: serviceName,
			TTS:     ttsProvider,
		})
	})

	e.POST("/api/generate", func(c echo.Context) error {
		return generateMonologue(c, generator, logger)
	})
}

func generateMonologue(c echo.Context, generator MonologueGenerator, logger *zap.Logger) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	log := logger.With(zap.String("request_id", requestID))

	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Failed to bind generate request", zap.Error(err))
		// Bodies without a Content-Length are only cut off while binding.
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
			return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MessageBodyTooLarge})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: MessageInvalidRequest})
	}

	monologue, err := generator.Generate(c.Request().Context(), req.Topic)
	if err != nil {
		status, message := classifyError(err)
		if errors.Is(err, context.Canceled) {
			log.Info("Client went away before the monologue was ready", zap.Error(err))
		} else {
			log.Error("Monologue generation failed",
				zap.Int("status", status),
				zap.Error(err))
		}
		return c.JSON(status, ErrorResponse{Error: message})
	}

	return c.JSON(http.StatusOK, GenerateResponse{
		Script: monologue.Script,
		Audio:  monologue.Audio.DataURI(),
	})
}

// classifyError maps pipeline errors onto an HTTP status and client message.
// Cloud synthesis and generation failures stay generic.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, entities.ErrEmptyTopic):
		return http.StatusBadRequest, MessageTopicRequired
	case errors.Is(err, entities.ErrTopicTooLong):
		return http.StatusBadRequest, MessageTopicTooLong
	case errors.Is(err, entities.ErrAudioRead):
		return http.StatusInternalServerError, MessageAudioRead
	case errors.Is(err, entities.ErrSynthesisFailed):
		return http.StatusInternalServerError, MessageAudioFailed
	default:
		return http.StatusInternalServerError, MessageGeneric
	}
}
