package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service validates records and persists them through the repositories.
// Every write checks the record before touching storage and runs with its
// associations in a single transaction.
type Service struct {
	db     database.Database
	logger zerolog.Logger
}

func New(db database.Database) *Service {
	return &Service{
		db:     db,
		logger: log.With().Str("service", "portfolio").Logger(),
	}
}

// checkIDs rejects association ids that do not exist
func checkIDs(ctx context.Context, field, entity string, ids []uuid.UUID, missing func(context.Context, []uuid.UUID) ([]uuid.UUID, error)) error {
	if len(ids) == 0 {
		return nil
	}
	unknown, err := missing(ctx, ids)
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		return errs.NewInvalidFieldError(field, fmt.Sprintf("unknown %s %s", entity, unknown[0]))
	}
	return nil
}

func (s *Service) deleteWith(ctx context.Context, entity string, id uuid.UUID, del func(context.Context, uuid.UUID) error) error {
	if err := del(ctx, id); err != nil {
		return errs.NewDatabaseError("delete", entity, err)
	}
	s.logger.Info().Str("entity", entity).Str("id", id.String()).Msg("deleted")
	return nil
}
