package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/asmith-studio/portfolio-backend/errs"
	"github.com/asmith-studio/portfolio-backend/models"
	"github.com/asmith-studio/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newContactHandler(portfolio *services.PortfolioService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// clientIP extracts the originating client address, preferring the first
// X-Forwarded-For entry when the request came through a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// createContactMessage accepts a contact-form submission
// @Summary Submit contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body models.ContactMessageCreate true "Contact form fields"
// @Success 201 {object} models.ContactMessage
// @Failure 400 {object} ErrorResponse "Bad Request - validation failure"
// @Router /contact [post]
func (h contactHandler) createContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ContactMessageCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact message body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		message, err := h.portfolio.CreateContactMessage(input, clientIP(r), r.UserAgent())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// getRecentMessages retrieves the newest contact messages
// @Summary Get recent messages
// @Tags Contact
// @Produce json
// @Param limit query int false "Maximum number of messages (default 10)"
// @Success 200 {array} models.ContactMessage
// @Router /messages [get]
func (h contactHandler) getRecentMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.portfolio.GetRecentMessages(limitParam(r, 0))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// updateContactMessage applies a status/reply update to a contact message
// @Summary Update contact message
// @Tags Contact
// @Accept json
// @Produce json
// @Param messageID path int true "Message ID"
// @Param message body models.ContactMessageUpdate true "Fields to update"
// @Success 200 {object} models.ContactMessage
// @Failure 404 {object} ErrorResponse "Not Found - Message not found"
// @Router /message/{messageID} [put]
func (h contactHandler) updateContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := idParam(r, "messageID")
		if messageID == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		var update models.ContactMessageUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact message update body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		message, err := h.portfolio.UpdateContactMessage(messageID, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}
