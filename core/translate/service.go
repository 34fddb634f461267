// ABOUTME: Translate service forwards profile descriptions to the translation provider
// ABOUTME: Validates input, resolves profile and instance settings, and reshapes the result

package translate

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"profile-translate-api/core/domain"
	coreerrors "profile-translate-api/core/errors"
	"profile-translate-api/core/interfaces"
)

// input mirrors the endpoint's parameter schema
type input struct {
	UserID     string `json:"userId" validate:"required,instanceid"`
	TargetLang string `json:"targetLang" validate:"required"`
}

// Service translates user profile descriptions
type Service struct {
	getter   interfaces.ProfileGetter
	meta     interfaces.MetaService
	provider interfaces.TranslationProvider
	logger   interfaces.Logger
	validate *validator.Validate
}

// NewService creates a new translate service
func NewService(getter interfaces.ProfileGetter, meta interfaces.MetaService, provider interfaces.TranslationProvider, logger interfaces.Logger) *Service {
	return &Service{
		getter:   getter,
		meta:     meta,
		provider: provider,
		logger:   logger,
		validate: newValidator(),
	}
}

// TranslateDescription translates the description of userID into targetLang.
// It returns (nil, nil) when there is nothing to translate: the profile has no
// description or no provider credential is configured.
func (s *Service) TranslateDescription(ctx context.Context, userID, targetLang string) (*domain.Translation, error) {
	if err := s.validateInput(input{UserID: userID, TargetLang: targetLang}); err != nil {
		return nil, err
	}

	profile, err := s.getter.GetUserProfile(ctx, userID)
	if err != nil {
		if coreerrors.HasID(err, coreerrors.IDNoSuchUser) {
			return nil, coreerrors.ErrNoSuchDescription
		}
		return nil, err
	}

	if !profile.HasDescription() {
		return nil, nil
	}

	instance, err := s.meta.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// TODO: report a dedicated "translator not configured" error once clients handle it
	if !instance.HasTranslator() {
		s.logger.Warn("Translation requested but no DeepL auth key is configured", map[string]interface{}{
			"user_id": userID,
		})
		return nil, nil
	}

	lang := domain.NormalizeTargetLang(targetLang)

	s.logger.Debug("Translating profile description", map[string]interface{}{
		"user_id":     userID,
		"target_lang": lang,
		"pro":         instance.DeeplIsPro,
	})

	return s.provider.Translate(ctx, interfaces.TranslationRequest{
		AuthKey:    *instance.DeeplAuthKey,
		Text:       *profile.Description,
		TargetLang: lang,
		Pro:        instance.DeeplIsPro,
	})
}

func (s *Service) validateInput(in input) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	message := "is required"
	if fe.Tag() == "instanceid" {
		message = "must be a valid ID"
	}
	return &coreerrors.ValidationError{Field: fe.Field(), Message: message}
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names so errors line up with the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("instanceid", func(fl validator.FieldLevel) bool {
		return domain.IsValidID(fl.Field().String())
	})

	return v
}
