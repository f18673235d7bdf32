// Package domain holds DTOs for localize http and service contracts
package domain

// DigitsInput asks for Persian digit substitution on freeform text
type DigitsInput struct {
	Text string `json:"text" validate:"omitempty,max=10000" example:"chapter 3 of 12"`
}

// DigitsResult carries the converted text
type DigitsResult struct {
	Text string `json:"text" example:"chapter ۳ of ۱۲"`
}

// NumberInput asks for a Persian rendering of an integer
type NumberInput struct {
	Value   int  `json:"value" example:"1234567"`
	Grouped bool `json:"grouped,omitempty" example:"true"`
}

// NumberResult carries the rendered number
type NumberResult struct {
	Text string `json:"text" example:"۱٬۲۳۴٬۵۶۷"`
}

// OrdinalInput asks for the Persian ordinal of a positive integer
type OrdinalInput struct {
	Value int `json:"value" validate:"min=1" example:"3"`
}

// OrdinalResult carries the ordinal text
type OrdinalResult struct {
	Text string `json:"text" example:"۳م"`
}

// DateInput asks for a Jalaali rendering of an ISO Gregorian date
type DateInput struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
}

// DateResult carries the formatted date; empty input stays empty
type DateResult struct {
	Text string `json:"text" example:"۱۴۰۲/۱۰/۱۱"`
}
