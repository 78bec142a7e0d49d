package validation

import (
	"strings"

	"github.com/IsPeeves/lumenixorg/internal/apperr"
	"github.com/IsPeeves/lumenixorg/models"
)

// ProjectInput is the external representation of a portfolio entry payload.
type ProjectInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Link        *string `json:"link,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// ProjectOrderInput is one entry of a bulk reorder request.
type ProjectOrderInput struct {
	ID    uint `json:"id"`
	Order int  `json:"order"`
}

// NewProject validates a creation payload and returns the normalized model.
func NewProject(in ProjectInput) (models.Project, error) {
	fields := map[string]string{}
	var p models.Project

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		fields["title"] = "must be a non-empty string"
	} else {
		p.Title = strings.TrimSpace(*in.Title)
	}

	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		fields["description"] = "must be a non-empty string"
	} else {
		p.Description = strings.TrimSpace(*in.Description)
	}

	if in.Image == nil || strings.TrimSpace(*in.Image) == "" {
		fields["image"] = "must be a non-empty string"
	} else {
		p.Image = strings.TrimSpace(*in.Image)
	}

	p.Link = optionalURL(in.Link, "link", fields)

	if in.Order != nil {
		if *in.Order < 0 {
			fields["order"] = "must be a non-negative integer"
		} else {
			p.Order = *in.Order
		}
	}

	if len(fields) > 0 {
		return models.Project{}, apperr.Validation(fields)
	}
	return p, nil
}

// ProjectUpdate validates a partial-update payload; keys in the returned map
// use external names.
func ProjectUpdate(in ProjectInput) (map[string]any, error) {
	fields := map[string]string{}
	updates := map[string]any{}

	if in.Title != nil {
		if trimmed := strings.TrimSpace(*in.Title); trimmed == "" {
			fields["title"] = "must be a non-empty string"
		} else {
			updates["title"] = trimmed
		}
	}

	if in.Description != nil {
		if trimmed := strings.TrimSpace(*in.Description); trimmed == "" {
			fields["description"] = "must be a non-empty string"
		} else {
			updates["description"] = trimmed
		}
	}

	if in.Image != nil {
		if trimmed := strings.TrimSpace(*in.Image); trimmed == "" {
			fields["image"] = "must be a non-empty string"
		} else {
			updates["image"] = trimmed
		}
	}

	if in.Link != nil {
		if link := optionalURL(in.Link, "link", fields); link != nil {
			updates["link"] = *link
		} else if _, bad := fields["link"]; !bad {
			updates["link"] = nil
		}
	}

	if in.Order != nil {
		if *in.Order < 0 {
			fields["order"] = "must be a non-negative integer"
		} else {
			updates["order"] = *in.Order
		}
	}

	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}
	if len(updates) == 0 {
		return nil, apperr.ValidationMsg("no fields to update")
	}
	return updates, nil
}

// ProjectReorder validates a bulk reorder request.
func ProjectReorder(in []ProjectOrderInput) error {
	if len(in) == 0 {
		return apperr.ValidationMsg("no order data to update")
	}
	for _, item := range in {
		if item.ID == 0 {
			return apperr.ValidationMsg("every entry needs a project id")
		}
		if item.Order < 0 {
			return apperr.ValidationMsg("order must be a non-negative integer")
		}
	}
	return nil
}
