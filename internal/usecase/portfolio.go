package usecase

import (
	"context"
	"strings"

	"portfolio-backend/internal/content"
	"portfolio-backend/internal/domain"
)

type portfolioUsecase struct {
	defaultLang string
}

// NewPortfolioUsecase creates a portfolio content usecase that falls back to
// defaultLang for unknown language codes.
func NewPortfolioUsecase(defaultLang string) domain.PortfolioUsecase {
	if content.ForLanguage(defaultLang) == nil {
		defaultLang = "en"
	}
	return &portfolioUsecase{defaultLang: defaultLang}
}

func (uc *portfolioUsecase) GetContent(ctx context.Context, lang string) *domain.PortfolioContent {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if doc := content.ForLanguage(lang); doc != nil {
		return doc
	}
	return content.ForLanguage(uc.defaultLang)
}

func (uc *portfolioUsecase) Languages(ctx context.Context) []string {
	return content.Languages(uc.defaultLang)
}
