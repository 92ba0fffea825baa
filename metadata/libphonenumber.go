package metadata

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"github.com/auth-platform/phonegen/format"
	"github.com/auth-platform/phonegen/region"
)

// LibPhoneNumberProvider serves metadata from the embedded libphonenumber
// dataset shipped with github.com/nyaruka/phonenumbers. It covers geographic
// regions and non-geographic entities (region code "001") alike.
type LibPhoneNumberProvider struct {
	regions []region.Region
	records map[region.Region]Record
}

// NewLibPhoneNumberProvider decodes the embedded dataset once and indexes it
// by (country code, region code). The provider is read-only afterwards.
func NewLibPhoneNumberProvider() (*LibPhoneNumberProvider, error) {
	collection, err := phonenumbers.MetadataCollection()
	if err != nil {
		return nil, fmt.Errorf("phonegen: load libphonenumber metadata: %w", err)
	}

	p := &LibPhoneNumberProvider{records: make(map[region.Region]Record)}
	for _, md := range collection.GetMetadata() {
		r := region.New(int(md.GetCountryCode()), md.GetId())
		if _, seen := p.records[r]; seen {
			continue
		}
		rec := Record{
			ID:             md.GetId(),
			CountryCode:    int(md.GetCountryCode()),
			NationalPrefix: md.GetNationalPrefix(),
			Patterns:       make(map[format.Name]string),
		}
		for name, desc := range formatDescs(md) {
			if desc == nil {
				continue
			}
			if pattern := desc.GetNationalNumberPattern(); pattern != "" {
				rec.Patterns[name] = pattern
			}
		}
		p.regions = append(p.regions, r)
		p.records[r] = rec
	}
	return p, nil
}

// formatDescs maps each vocabulary name to the corresponding metadata desc.
// Descs the dataset does not populate for a region come back nil.
func formatDescs(md *phonenumbers.PhoneMetadata) map[format.Name]*phonenumbers.PhoneNumberDesc {
	return map[format.Name]*phonenumbers.PhoneNumberDesc{
		format.GeneralDesc:             md.GetGeneralDesc(),
		format.FixedLine:               md.GetFixedLine(),
		format.Mobile:                  md.GetMobile(),
		format.TollFree:                md.GetTollFree(),
		format.PremiumRate:             md.GetPremiumRate(),
		format.SharedCost:              md.GetSharedCost(),
		format.PersonalNumber:          md.GetPersonalNumber(),
		format.Voip:                    md.GetVoip(),
		format.Pager:                   md.GetPager(),
		format.Uan:                     md.GetUan(),
		format.Emergency:               md.GetEmergency(),
		format.Voicemail:               md.GetVoicemail(),
		format.ShortCode:               md.GetShortCode(),
		format.StandardRate:            md.GetStandardRate(),
		format.CarrierSpecific:         md.GetCarrierSpecific(),
		format.SmsServices:             md.GetSmsServices(),
		format.NoInternationalDialling: md.GetNoInternationalDialling(),
	}
}

// Regions returns every dataset region in dataset order.
func (p *LibPhoneNumberProvider) Regions() []region.Region {
	out := make([]region.Region, len(p.regions))
	copy(out, p.regions)
	return out
}

// MetadataFor returns the record for one region.
func (p *LibPhoneNumberProvider) MetadataFor(r region.Region) (Record, bool) {
	rec, ok := p.records[r]
	return rec, ok
}
