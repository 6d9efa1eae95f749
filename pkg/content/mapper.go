package content

import "strings"

// Mapping is a role key → display string dictionary. Empty values mean the
// placeholder is skipped.
type Mapping map[string]string

// Role keys.
const (
	KeyCompanyName = "companyName"
	KeyBrandName   = "brandName"
	KeyName        = "name"
	KeyEventTitle  = "eventTitle"
	KeyOrganizer   = "organizer"
	KeyDescription = "description"
	KeyTagline     = "tagline"
	KeyAbout       = "about"
	KeyCategory    = "category"
	KeyAddress     = "address"
	KeyLocation    = "location"
	KeyVenue       = "venue"
	KeyPhone       = "phone"
	KeyContact     = "contact"
	KeyMobile      = "mobile"
	KeyEmail       = "email"
	KeyWebsite     = "website"
	KeyLogo        = "logo"
	KeyCompanyLogo = "companyLogo"
	KeyServices    = "services"

	// KeyFooterBackground marks the footer band layer. It never carries content.
	KeyFooterBackground = "footerBackground"
)

// Decorative prefixes. Changing them changes every rendered poster.
const (
	PhonePrefix   = "📞 "
	EmailPrefix   = "✉️ "
	WebsitePrefix = "🌐 "
	AddressPrefix = "📍 "
)

const servicesSeparator = " • "

var roleKeys = []string{
	KeyCompanyName, KeyBrandName, KeyName, KeyEventTitle, KeyOrganizer,
	KeyDescription, KeyTagline, KeyAbout,
	KeyCategory,
	KeyAddress, KeyLocation, KeyVenue,
	KeyPhone, KeyContact, KeyMobile,
	KeyEmail,
	KeyWebsite,
	KeyLogo, KeyCompanyLogo,
	KeyServices,
}

// RoleKeys returns every key MapProfile always populates, in stable order.
func RoleKeys() []string {
	out := make([]string, len(roleKeys))
	copy(out, roleKeys)
	return out
}

// MapProfile converts a profile into a Mapping. Every role key is present;
// missing profile fields map to "".
func MapProfile(p BusinessProfile) Mapping {
	name := clean(p.Name)
	description := clean(p.Description)
	address := prefixed(AddressPrefix, p.Address)
	phone := prefixed(PhonePrefix, p.Phone)

	logo := clean(p.Logo)
	companyLogo := clean(p.CompanyLogo)
	if logo == "" {
		logo = companyLogo
	}
	if companyLogo == "" {
		companyLogo = logo
	}

	return Mapping{
		KeyCompanyName: name,
		KeyBrandName:   name,
		KeyName:        name,
		KeyEventTitle:  name,
		KeyOrganizer:   name,

		KeyDescription: description,
		KeyTagline:     description,
		KeyAbout:       description,

		KeyCategory: clean(p.Category),

		KeyAddress:  address,
		KeyLocation: address,
		KeyVenue:    address,

		KeyPhone:   phone,
		KeyContact: phone,
		KeyMobile:  phone,

		KeyEmail:   prefixed(EmailPrefix, p.Email),
		KeyWebsite: prefixed(WebsitePrefix, p.Website),

		KeyLogo:        logo,
		KeyCompanyLogo: companyLogo,

		KeyServices: joinServices(p.Services),
	}
}

// Get returns the value for key, "" when absent. Safe on a nil Mapping.
func (m Mapping) Get(key string) string {
	return m[key]
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

func prefixed(prefix, s string) string {
	s = clean(s)
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinServices(services []string) string {
	parts := make([]string, 0, len(services))
	for _, s := range services {
		if s = clean(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, servicesSeparator)
}
