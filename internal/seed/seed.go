package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/oguzk/campusreg/internal/app/models"
	appRepos "github.com/oguzk/campusreg/internal/app/repositories"
	"github.com/oguzk/campusreg/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

// CreateDefaultData inserts a demo course catalog if it doesn't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default course catalog...")

	demoCourses := []*appModels.Course{
		{Code: "CS101", Name: "Introduction to Computer Science", Description: strPtr("Fundamentals of programming and computational thinking."), Capacity: 30},
		{Code: "CS201", Name: "Data Structures", Description: strPtr("Lists, trees, hash tables and the analysis of algorithms."), Capacity: 25},
		{Code: "MATH150", Name: "Calculus I", Description: strPtr("Limits, derivatives and integrals of single-variable functions."), Capacity: 60},
		{Code: "PHYS110", Name: "Mechanics", Capacity: 40},
	}

	var finalErr error
	for _, course := range demoCourses {
		err := courseRepo.Create(ctx, course)
		if err != nil && !errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("code", course.Code).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(demoCourses)).Msg("Default course catalog ready")
	}
	return finalErr
}
