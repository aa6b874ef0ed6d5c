package dto

import "storefront/internal/domain/model"

type WelcomeInput struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"imageUrl"`
	ButtonText string `json:"buttonText"`
	Position   int    `json:"position"`
	Active     *bool  `json:"active"`
}

// Welcome builds the screen; screens are active unless stated otherwise.
func (in WelcomeInput) Welcome() *model.Welcome {
	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return &model.Welcome{
		Title:      in.Title,
		Subtitle:   in.Subtitle,
		ImageURL:   in.ImageURL,
		ButtonText: in.ButtonText,
		Position:   in.Position,
		Active:     active,
	}
}

type WelcomePatch struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ImageURL   *string `json:"imageUrl"`
	ButtonText *string `json:"buttonText"`
	Position   *int    `json:"position"`
	Active     *bool   `json:"active"`
}

func (in WelcomePatch) Apply(w *model.Welcome) Fields {
	fields := Fields{}
	set(fields, "title", &w.Title, in.Title)
	set(fields, "subtitle", &w.Subtitle, in.Subtitle)
	set(fields, "image_url", &w.ImageURL, in.ImageURL)
	set(fields, "button_text", &w.ButtonText, in.ButtonText)
	set(fields, "position", &w.Position, in.Position)
	set(fields, "active", &w.Active, in.Active)

	return fields
}
