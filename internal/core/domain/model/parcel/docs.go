// Package parcel holds the physical package whose service eligibility is being decided.
//
// The type is named Parcel because "package" is a reserved word in Go.
package parcel
