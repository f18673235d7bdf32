package domain

// ServicePort defines the service contract for localization
type ServicePort interface {
	Digits(in DigitsInput) DigitsResult
	Number(in NumberInput) NumberResult
	Ordinal(in OrdinalInput) OrdinalResult
	Date(in DateInput) DateResult
}
