// Package format defines the closed vocabulary of named phone-number format
// categories and the display-format labels.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a named number-format category from the phone-number
// metadata, such as mobile or toll_free. Not every region supports every
// category.
type Name string

// The fixed vocabulary of named number formats.
const (
	GeneralDesc             Name = "general_desc"
	FixedLine               Name = "fixed_line"
	Mobile                  Name = "mobile"
	TollFree                Name = "toll_free"
	PremiumRate             Name = "premium_rate"
	SharedCost              Name = "shared_cost"
	PersonalNumber          Name = "personal_number"
	Voip                    Name = "voip"
	Pager                   Name = "pager"
	Uan                     Name = "uan"
	Emergency               Name = "emergency"
	Voicemail               Name = "voicemail"
	ShortCode               Name = "short_code"
	StandardRate            Name = "standard_rate"
	CarrierSpecific         Name = "carrier_specific"
	SmsServices             Name = "sms_services"
	NoInternationalDialling Name = "no_international_dialling"
)

var all = []Name{
	GeneralDesc,
	FixedLine,
	Mobile,
	TollFree,
	PremiumRate,
	SharedCost,
	PersonalNumber,
	Voip,
	Pager,
	Uan,
	Emergency,
	Voicemail,
	ShortCode,
	StandardRate,
	CarrierSpecific,
	SmsServices,
	NoInternationalDialling,
}

var index = func() map[Name]struct{} {
	m := make(map[Name]struct{}, len(all))
	for _, name := range all {
		m[name] = struct{}{}
	}
	return m
}()

// ErrInvalidFormatName is the sentinel for labels outside the fixed vocabulary.
var ErrInvalidFormatName = errors.New("phonegen: invalid number format name")

// InvalidNameError reports a format label outside the fixed vocabulary.
type InvalidNameError struct {
	Label string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("phonegen: invalid number format name %q", e.Label)
}

// Unwrap makes the error match ErrInvalidFormatName via errors.Is.
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidFormatName
}

// All returns the vocabulary in declaration order. The slice is a fresh copy.
func All() []Name {
	out := make([]Name, len(all))
	copy(out, all)
	return out
}

// Valid reports whether name belongs to the fixed vocabulary.
func Valid(name Name) bool {
	_, ok := index[name]
	return ok
}

// String returns the canonical label of the format name.
func (n Name) String() string {
	return string(n)
}

// Parse coerces a loose label into a vocabulary Name. Matching is
// case-insensitive and accepts spaces or hyphens in place of underscores,
// so "Toll Free" and "toll-free" both parse to TollFree.
func Parse(label string) (Name, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	name := Name(normalized)
	if !Valid(name) {
		return "", &InvalidNameError{Label: label}
	}
	return name, nil
}

// ParseAll parses every label, failing on the first invalid one.
func ParseAll(labels []string) ([]Name, error) {
	names := make([]Name, 0, len(labels))
	for _, label := range labels {
		name, err := Parse(label)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
