package faker

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// NewDefault returns a registry populated with gofakeit-backed operations
// under faker-style group and func names. A zero seed draws a random one.
func NewDefault(seed int64) *Registry {
	f := gofakeit.New(seed)
	r := NewRegistry()

	str := func(group, fn string, op func() string) {
		r.Register(group, fn, func() any { return op() })
	}
	date := func(group, fn string, op func() time.Time) {
		r.Register(group, fn, func() any { return op().UTC().Format(time.RFC3339) })
	}

	str("name", "firstName", f.FirstName)
	str("name", "lastName", f.LastName)
	str("name", "findName", f.Name)
	str("name", "prefix", f.NamePrefix)
	str("name", "suffix", f.NameSuffix)
	str("name", "jobTitle", f.JobTitle)
	str("name", "gender", f.Gender)

	str("address", "city", f.City)
	str("address", "streetAddress", f.Street)
	str("address", "streetName", f.StreetName)
	str("address", "zipCode", f.Zip)
	str("address", "country", f.Country)
	str("address", "state", f.State)
	r.Register("address", "latitude", func() any { return f.Latitude() })
	r.Register("address", "longitude", func() any { return f.Longitude() })

	str("internet", "email", f.Email)
	str("internet", "userName", f.Username)
	str("internet", "url", f.URL)
	str("internet", "domainName", f.DomainName)
	str("internet", "ip", f.IPv4Address)
	str("internet", "ipv6", f.IPv6Address)
	str("internet", "color", f.HexColor)
	str("internet", "password", func() string {
		return f.Password(true, true, true, false, false, 15)
	})

	str("phone", "phoneNumber", f.Phone)

	str("company", "companyName", f.Company)
	str("company", "companySuffix", f.CompanySuffix)
	str("company", "bs", f.BS)
	str("company", "catchPhrase", f.BuzzWord)

	str("lorem", "word", f.Word)
	str("lorem", "sentence", func() string { return f.Sentence(8) })
	str("lorem", "paragraph", func() string { return f.Paragraph(1, 4, 10, " ") })

	date("date", "past", f.PastDate)
	date("date", "future", f.FutureDate)
	date("date", "recent", func() time.Time {
		now := time.Now()
		return f.DateRange(now.AddDate(0, 0, -1), now)
	})
	str("date", "month", f.MonthString)
	str("date", "weekday", f.WeekDay)

	r.Register("finance", "amount", func() any { return f.Price(0, 1000) })
	str("finance", "currencyCode", f.CurrencyShort)
	str("finance", "creditCardNumber", func() string { return f.CreditCardNumber(nil) })

	str("random", "uuid", f.UUID)
	// JSON numbers decode as float64; keep integers in that type.
	r.Register("random", "number", func() any { return float64(f.Number(0, 99999)) })
	r.Register("random", "boolean", func() any { return f.Bool() })

	str("hacker", "phrase", f.HackerPhrase)
	str("hacker", "noun", f.HackerNoun)
	str("hacker", "verb", f.HackerVerb)
	str("hacker", "abbreviation", f.HackerAbbreviation)

	str("animal", "type", f.AnimalType)

	return r
}
