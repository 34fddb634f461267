// Package core contains the business logic for the Profile Translate API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: pure domain models (UserProfile, InstanceMeta, Translation)
// - errors: custom and identified error types
// - interfaces: contracts for external dependencies (cache, HTTP, logger, storage)
// - getter: user profile lookup
// - meta: cached instance settings lookup
// - translate: the translate-description operation
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "profile-translate-api/core/getter"
//	    "profile-translate-api/core/meta"
//	    "profile-translate-api/core/translate"
//	)
//
//	metaService := meta.NewService(metaStore, cache, logger, 10*time.Second)
//	service := translate.NewService(getter.NewGetterService(profileStore), metaService, provider, logger)
//
//	translation, err := service.TranslateDescription(ctx, "9g2h3j4k5l", "en-US")
//	if err == nil && translation == nil {
//	    // nothing to translate
//	}
package core
