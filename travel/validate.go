package travel

import "fmt"

const (
	nameMaxLen        = 200
	locationMaxLen    = 100
	stateMaxLen       = 100
	descriptionMinLen = 10
	descriptionMaxLen = 1000
)

// ValidateCreate checks a full create payload: all required fields present,
// then the same per-field rules as ValidateUpdate. Pure, no I/O.
func ValidateCreate(f DestinationFields) error {
	required := []struct {
		name    string
		present bool
	}{
		{"name", f.Name != nil},
		{"location", f.Location != nil},
		{"state", f.State != nil},
		{"description", f.Description != nil},
		{"category", f.Category != nil},
		{"rating", f.Rating != nil},
		{"price_from", f.PriceFrom != nil},
	}
	for _, r := range required {
		if !r.present {
			return newValidationError(ValidationMissingField, r.name, "field is required")
		}
	}
	return ValidateUpdate(f)
}

// ValidateUpdate applies per-field rules to the fields that are present.
func ValidateUpdate(f DestinationFields) error {
	if f.Name != nil {
		if err := validateLength("name", *f.Name, 1, nameMaxLen); err != nil {
			return err
		}
	}
	if f.Location != nil {
		if err := validateLength("location", *f.Location, 1, locationMaxLen); err != nil {
			return err
		}
	}
	if f.State != nil {
		if err := validateLength("state", *f.State, 1, stateMaxLen); err != nil {
			return err
		}
	}
	if f.Description != nil {
		if err := validateLength("description", *f.Description, descriptionMinLen, descriptionMaxLen); err != nil {
			return err
		}
	}
	if f.Category != nil {
		if err := ValidateCategory(*f.Category); err != nil {
			return err
		}
	}
	if f.Rating != nil {
		if err := ValidateRating(*f.Rating); err != nil {
			return err
		}
	}
	if f.PriceFrom != nil {
		if err := ValidatePrice(*f.PriceFrom); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCategory rejects values outside the five-member enum.
func ValidateCategory(c Category) error {
	if !c.Valid() {
		return newValidationError(ValidationInvalidCategory, "category",
			fmt.Sprintf("%q is not one of %v", c, Categories()))
	}
	return nil
}

// ValidateRating rejects ratings outside [0, 5].
func ValidateRating(r float64) error {
	if r < 0 || r > 5 {
		return newValidationError(ValidationOutOfRange, "rating",
			fmt.Sprintf("%v is outside [0, 5]", r))
	}
	return nil
}

// ValidatePrice rejects negative prices.
func ValidatePrice(p int) error {
	if p < 0 {
		return newValidationError(ValidationNegative, "price_from",
			fmt.Sprintf("%d is negative", p))
	}
	return nil
}

func validateLength(field, value string, min, max int) error {
	n := len([]rune(value))
	if n < min || n > max {
		return newValidationError(ValidationOutOfRange, field,
			fmt.Sprintf("length %d is outside [%d, %d]", n, min, max))
	}
	return nil
}
