package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a size-limited body into v
func decodeJSON(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, payloadType string, v any) error {
	bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errs.NewMaxBodySizeExceededError(maxBodyBytes)
		}
		logger.Error().Err(err).Msg("Failed to read request body")
		return errs.BadRequest("failed to read request body")
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(v); err != nil {
		logger.Warn().Err(err).Str("body", string(bodyBytes)).Msgf("Failed to decode %s request body", payloadType)
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}

// urlID parses the uuid path parameter named param
func urlID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, errs.BadRequest("missing " + param)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.BadRequest("invalid " + param)
	}
	return id, nil
}

// listOptions reads ?order= and ?public= from the query string
func listOptions(r *http.Request, allowed map[string]bool) (database.ListOptions, error) {
	var opts database.ListOptions
	query := r.URL.Query()

	order, err := database.ParseOrder(query.Get("order"), allowed)
	if err != nil {
		return opts, err
	}
	opts.Order = order

	if raw := query.Get("public"); raw != "" {
		public, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errs.NewInvalidFieldError("public", "must be true or false")
		}
		opts.PublicOnly = public
	}
	return opts, nil
}

// parseDate accepts YYYY-MM-DD; nil or blank means no date
func parseDate(field string, raw *string) (*datatypes.Date, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	d, err := models.ParseDate(strings.TrimSpace(*raw))
	if err != nil {
		return nil, errs.NewInvalidFieldError(field, "must be a date in YYYY-MM-DD format")
	}
	return &d, nil
}

func requireDate(field string, raw *string) (datatypes.Date, error) {
	d, err := parseDate(field, raw)
	if err != nil {
		return datatypes.Date{}, err
	}
	if d == nil {
		return datatypes.Date{}, errs.NewMissingRequiredFieldError(field)
	}
	return *d, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
