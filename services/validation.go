package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gosimple/slug"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/datatypes"
)

// EndBeforeStartMessage is returned whenever an end date precedes its start date.
const EndBeforeStartMessage = "End date cannot be before start date!"

const slugMaxLength = 50

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// validate checks the `validate` struct tags on the models. Field names in
// its errors are the json names callers send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "job_level", func(fl validator.FieldLevel) bool {
		level, ok := fl.Field().Interface().(models.JobLevel)
		return ok && level.Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %s validation: %v", tag, err))
	}
}

// validateStruct runs the tag checks and reports the first failure as a
// field error.
func validateStruct(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errs.NewInternalErrorWithCause("validating record", err)
	}

	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return errs.NewMissingRequiredFieldError(field)
	case "max":
		return errs.NewInvalidFieldError(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	case "http_url":
		return errs.NewInvalidFieldError(field, "must be an absolute http(s) URL")
	case "slug":
		return errs.NewInvalidFieldError(field, "may only contain letters, numbers, underscores or hyphens")
	case "job_level":
		return errs.NewInvalidFieldError(field, "must be Intern, Contract or empty")
	default:
		return errs.NewInvalidFieldError(field, fmt.Sprintf("failed the %s check", fe.Tag()))
	}
}

// CheckDateOrder rejects a range whose start falls after its end.
func CheckDateOrder(start, end datatypes.Date) error {
	if time.Time(start).After(time.Time(end)) {
		return errs.NewValidationError("end_date", EndBeforeStartMessage)
	}
	return nil
}

// Slugify transliterates s to ASCII and joins its words with hyphens,
// capped at the slug column length.
func Slugify(s string) string {
	out := slug.Make(s)
	if len(out) > slugMaxLength {
		out = strings.TrimRight(out[:slugMaxLength], "-_")
	}
	return out
}

// ensureSlug derives an empty slug from name. A blank name is left for the
// required check to report.
func ensureSlug(s *string, name string) error {
	if strings.TrimSpace(*s) != "" || strings.TrimSpace(name) == "" {
		return nil
	}
	*s = Slugify(name)
	if *s == "" {
		return errs.NewInvalidFieldError("name", "must contain a letter or digit to derive a slug from")
	}
	return nil
}

// blankToNil clears optional values sent as empty strings
func blankToNil(fields ...**string) {
	for _, f := range fields {
		if *f != nil && strings.TrimSpace(**f) == "" {
			*f = nil
		}
	}
}

func ValidateCategory(c *models.Category) error {
	blankToNil(&c.Image)
	if err := ensureSlug(&c.Slug, c.Name); err != nil {
		return err
	}
	return validateStruct(c)
}

func ValidateSubCategory(s *models.SubCategory) error {
	blankToNil(&s.Image)
	if err := ensureSlug(&s.Slug, s.Name); err != nil {
		return err
	}
	return validateStruct(s)
}

// ValidateProject runs the field checks followed by the date guard. The
// guard only applies when both dates are present.
func ValidateProject(p *models.Project) error {
	blankToNil(&p.LongDescription, &p.Image, &p.RepositoryURL, &p.LiveURL)
	if err := ensureSlug(&p.Slug, p.Name); err != nil {
		return err
	}
	if err := validateStruct(p); err != nil {
		return err
	}

	if p.StartDate != nil && p.EndDate != nil {
		return CheckDateOrder(*p.StartDate, *p.EndDate)
	}
	return nil
}

func ValidateArticle(a *models.Article) error {
	blankToNil(&a.Image)
	if err := validateStruct(a); err != nil {
		return err
	}
	if time.Time(a.DatePosted).IsZero() {
		return errs.NewMissingRequiredFieldError("date_posted")
	}
	return nil
}

func ValidateCompany(c *models.Company) error {
	blankToNil(&c.Website)
	return validateStruct(c)
}

func ValidateTask(t *models.Task) error {
	blankToNil(&t.Link)
	return validateStruct(t)
}

// ValidateJob runs the field checks followed by the date guard, which
// applies whenever an end date is set.
func ValidateJob(j *models.Job) error {
	if err := validateStruct(j); err != nil {
		return err
	}

	if j.EndDate != nil {
		return CheckDateOrder(j.StartDate, *j.EndDate)
	}
	return nil
}
