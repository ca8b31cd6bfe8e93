package domain

import "context"

// Hero is the landing section headline block.
type Hero struct {
	Greeting string `json:"greeting"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
}

// About holds the introduction paragraphs and quick facts.
type About struct {
	Paragraphs []string `json:"paragraphs"`
	Location   string   `json:"location"`
	Languages  []string `json:"languages"`
}

// ExperienceEntry is one position in the work history timeline.
type ExperienceEntry struct {
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
}

// SkillGroup clusters related skills under one heading.
type SkillGroup struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Project is a portfolio showcase item.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	RepoURL     string   `json:"repo_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
}

// Quote is a rotating inspirational quote shown between sections.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// ContactChannels lists the public ways to reach the site owner.
type ContactChannels struct {
	Email    string `json:"email"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// PortfolioContent is the full localized document the frontend renders.
type PortfolioContent struct {
	Language   string            `json:"language"`
	Hero       Hero              `json:"hero"`
	About      About             `json:"about"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []SkillGroup      `json:"skills"`
	Projects   []Project         `json:"projects"`
	Quotes     []Quote           `json:"quotes"`
	Contact    ContactChannels   `json:"contact"`
}

// PortfolioUsecase serves the site content for a requested language.
type PortfolioUsecase interface {
	// GetContent returns the content document for lang, falling back to the
	// default language when lang is unknown or empty.
	GetContent(ctx context.Context, lang string) *PortfolioContent
	// Languages returns the supported language codes, default first.
	Languages(ctx context.Context) []string
}
