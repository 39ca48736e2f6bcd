package rest

import (
	"time"

	"github.com/haqqvault/backend/internal/domain"
)

type topicResponse struct {
	ID                  string     `json:"id"`
	Slug                string     `json:"slug"`
	Title               string     `json:"title"`
	TitleArabic         *string    `json:"titleArabic,omitempty"`
	Claim               string     `json:"claim"`
	ShortAnswer         string     `json:"shortAnswer"`
	DetailedExplanation string     `json:"detailedExplanation,omitempty"`
	CategoryID          string     `json:"categoryId"`
	SeverityLevel       string     `json:"severityLevel"`
	Tags                []string   `json:"tags"`
	Status              string     `json:"status"`
	IsVerified          bool       `json:"isVerified"`
	ViewCount           int        `json:"viewCount"`
	AuthorID            *string    `json:"authorId,omitempty"`
	ReviewerID          *string    `json:"reviewerId,omitempty"`
	PublishedAt         *time.Time `json:"publishedAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func toTopicResponse(t domain.Topic) topicResponse {
	resp := topicResponse{
		ID:                  t.ID.String(),
		Slug:                t.Slug,
		Title:               t.Title,
		TitleArabic:         t.TitleArabic,
		Claim:               t.Claim,
		ShortAnswer:         t.ShortAnswer,
		DetailedExplanation: t.DetailedExplanation,
		CategoryID:          t.CategoryID.String(),
		SeverityLevel:       t.SeverityLevel.String(),
		Tags:                t.Tags,
		Status:              t.Status.String(),
		IsVerified:          t.IsVerified,
		ViewCount:           t.ViewCount,
		PublishedAt:         t.PublishedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.AuthorID != nil {
		s := t.AuthorID.String()
		resp.AuthorID = &s
	}
	if t.ReviewerID != nil {
		s := t.ReviewerID.String()
		resp.ReviewerID = &s
	}
	return resp
}

func toTopicResponses(topics []domain.Topic) []topicResponse {
	out := make([]topicResponse, len(topics))
	for i, t := range topics {
		out[i] = toTopicResponse(t)
	}
	return out
}

type paginatedTopicsResponse struct {
	Data    []topicResponse `json:"data"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"perPage"`
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	NameArabic  *string   `json:"nameArabic,omitempty"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	TopicCount  int       `json:"topicCount"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Slug:        c.Slug,
		Name:        c.Name,
		NameArabic:  c.NameArabic,
		Description: c.Description,
		Icon:        c.Icon,
		Color:       c.Color,
		TopicCount:  c.TopicCount,
		Order:       c.Order,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(categories []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryResponse(c)
	}
	return out
}

type evidenceResponse struct {
	ID              string    `json:"id"`
	TopicID         string    `json:"topicId"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	TitleArabic     *string   `json:"titleArabic,omitempty"`
	Content         string    `json:"content"`
	ContentArabic   *string   `json:"contentArabic,omitempty"`
	Source          string    `json:"source"`
	SourceReference *string   `json:"sourceReference,omitempty"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toEvidenceResponse(e domain.Evidence) evidenceResponse {
	return evidenceResponse{
		ID:              e.ID.String(),
		TopicID:         e.TopicID.String(),
		Type:            e.Type.String(),
		Title:           e.Title,
		TitleArabic:     e.TitleArabic,
		Content:         e.Content,
		ContentArabic:   e.ContentArabic,
		Source:          e.Source,
		SourceReference: e.SourceReference,
		IsAuthenticated: e.IsAuthenticated,
		Order:           e.Order,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toEvidenceResponses(items []domain.Evidence) []evidenceResponse {
	out := make([]evidenceResponse, len(items))
	for i, e := range items {
		out[i] = toEvidenceResponse(e)
	}
	return out
}

type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	NameArabic *string   `json:"nameArabic,omitempty"`
	Avatar     *string   `json:"avatar,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"isVerified"`
	Bio        *string   `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		NameArabic: u.NameArabic,
		Avatar:     u.Avatar,
		Role:       u.Role.String(),
		IsVerified: u.IsVerified,
		Bio:        u.Bio,
		CreatedAt:  u.CreatedAt,
	}
}
