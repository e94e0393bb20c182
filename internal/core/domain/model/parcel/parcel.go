package parcel

import (
	"errors"

	"eligibility/internal/core/domain/model/kernel"
	"eligibility/internal/pkg/errs"
	"eligibility/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a zero-value Parcel reaches evaluation.
var ErrParcelIsNotConstructed = errs.NewInvalidPackageError("parcel", "not created via NewParcel")

// Parcel is an immutable package description: a weight and three unordered linear dimensions.
type Parcel struct { //nolint:recvcheck //using for validation
	weight     kernel.Grams
	dimensions kernel.Dimensions
	guard      guard.ConstructorGuard
}

// NewParcel validates the measurements and builds a Parcel.
//
// Any negative or non-finite value yields an *errs.InvalidPackageError per offending field,
// joined together.
func NewParcel(weight kernel.Grams, length, width, height kernel.Millimeters) (Parcel, error) {
	p := Parcel{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setWeight(weight),
		checkAxis("length_mm", length),
		checkAxis("width_mm", width),
		checkAxis("height_mm", height),
	); err != nil {
		return Parcel{}, err
	}

	dims, err := kernel.NewDimensions(length, width, height)
	if err != nil {
		return Parcel{}, errs.NewInvalidPackageErrorWithCause("dimensions", [3]kernel.Millimeters{length, width, height}, err)
	}
	p.dimensions = dims

	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Weight() kernel.Grams {
	return p.weight
}

func (p Parcel) Dimensions() kernel.Dimensions {
	return p.dimensions
}

func (p Parcel) String() string {
	return p.dimensions.String() + " " + p.weight.String()
}

func (p *Parcel) setWeight(weight kernel.Grams) error {
	if err := weight.Validate("weight_g"); err != nil {
		return errs.NewInvalidPackageErrorWithCause("weight_g", weight, err)
	}

	p.weight = weight
	return nil
}

func checkAxis(name string, v kernel.Millimeters) error {
	if err := v.Validate(name); err != nil {
		return errs.NewInvalidPackageErrorWithCause(name, v, err)
	}
	return nil
}
