package cash

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"unicode/utf8"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency together with the metadata needed to
// compute with it and to display it.
// The zero value reads as [XXX], which indicates an unknown currency.
//
// Currency is an immutable value, so it is safe for concurrent use by
// multiple goroutines.
// Two currencies are considered the same when their codes match, see
// method [Currency.Equal].
type Currency struct {
	code      string
	num       string
	name      string
	exponent  int
	subunit   int64
	symbol    string
	thousands string
	mark      string
	cashUnit  int64 // smallest cash denomination in minor units, 0 if absent
}

// CurrencyInfo holds the raw fields of a currency record as supplied by
// a currency data source.
// See also constructor [NewCurrency] and method [Registry.Load].
type CurrencyInfo struct {
	Code                 string `yaml:"code" json:"code"`
	Num                  string `yaml:"num" json:"num"`
	Name                 string `yaml:"name" json:"name"`
	Exponent             int    `yaml:"exponent" json:"exponent"`
	SubunitToUnit        int64  `yaml:"subunit_to_unit" json:"subunit_to_unit"`
	Symbol               string `yaml:"symbol" json:"symbol"`
	ThousandsSeparator   string `yaml:"thousands_separator" json:"thousands_separator"`
	DecimalMark          string `yaml:"decimal_mark" json:"decimal_mark"`
	SmallestDenomination int64  `yaml:"smallest_denomination" json:"smallest_denomination"`
}

// NewCurrency validates a currency record and returns the corresponding currency.
// The code is normalized to upper case.
// Subunit-to-unit ratio does not have to be a power of 10,
// for example, the [Malagasy Ariary] uses 5 iraimbilanja per ariary.
//
// NewCurrency returns an error if:
//   - the code is empty or contains spaces;
//   - the exponent or the smallest denomination is negative;
//   - the subunit-to-unit ratio is not positive.
//
// [Malagasy Ariary]: https://en.wikipedia.org/wiki/Malagasy_ariary
func NewCurrency(info CurrencyInfo) (Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(info.Code))
	switch {
	case code == "" || strings.ContainsAny(code, " \t"):
		return Currency{}, fmt.Errorf("currency code %q is not valid", info.Code)
	case info.Exponent < 0:
		return Currency{}, fmt.Errorf("currency %v: exponent must be non-negative", code)
	case info.SubunitToUnit <= 0:
		return Currency{}, fmt.Errorf("currency %v: subunit to unit ratio must be positive", code)
	case info.SmallestDenomination < 0:
		return Currency{}, fmt.Errorf("currency %v: smallest denomination must be non-negative", code)
	}
	c := Currency{
		code:      code,
		num:       info.Num,
		name:      info.Name,
		exponent:  info.Exponent,
		subunit:   info.SubunitToUnit,
		symbol:    info.Symbol,
		thousands: info.ThousandsSeparator,
		mark:      info.DecimalMark,
		cashUnit:  info.SmallestDenomination,
	}
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the record is not valid.
func MustNewCurrency(info CurrencyInfo) Currency {
	c, err := NewCurrency(info)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q) failed: %v", info.Code, err))
	}
	return c
}

// ParseCurr returns a currency registered in the default registry.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error wrapping [ErrUnknownCurrency] if the string
// does not represent a registered currency.
func ParseCurr(curr string) (Currency, error) {
	return defaultRegistry.Lookup(curr)
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// RegisterCurrency adds or replaces a currency in the default registry.
// It is meant to be called during program initialization, before
// currencies are looked up concurrently.
func RegisterCurrency(c Currency) error {
	return defaultRegistry.Register(c)
}

// Code returns the alphabetic code of the currency, such as "USD".
// The zero value returns "XXX".
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// If the currency does not have such a code, the method will return an empty string.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	if c.code == "" {
		return "999"
	}
	return c.num
}

// Name returns the English name of the currency.
func (c Currency) Name() string {
	return c.name
}

// Scale returns the number of digits in the minor unit of the currency.
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [US Dollar] represents its minor unit, 1 cent, as 0.01 dollars.
//   - A scale of 3 indicates currencies with 3 digits in their minor units.
//     For instance, the minor unit of the [Omani Rial], 1 baisa, is represented as 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return c.exponent
}

// SubunitToUnit returns the number of minor units in one major unit.
// It is 10^[Currency.Scale] for most currencies.
func (c Currency) SubunitToUnit() int64 {
	if c.subunit == 0 {
		return 1
	}
	return c.subunit
}

// Symbol returns the display symbol of the currency, such as "$".
func (c Currency) Symbol() string {
	return c.symbol
}

// ThousandsSeparator returns the digit group separator used when displaying
// amounts in the currency.
func (c Currency) ThousandsSeparator() string {
	return c.thousands
}

// DecimalMark returns the mark separating major and minor units when displaying
// amounts in the currency.
func (c Currency) DecimalMark() string {
	return c.mark
}

// SmallestDenomination returns the smallest coin or note of the currency,
// expressed in minor units.
// If the currency has no physical cash, false is returned.
func (c Currency) SmallestDenomination() (units int64, ok bool) {
	return c.cashUnit, c.cashUnit > 0
}

// Equal returns true if currencies have the same code.
func (c Currency) Equal(d Currency) bool {
	return c.Code() == d.Code()
}

// Info returns the record the currency was constructed from.
func (c Currency) Info() CurrencyInfo {
	return CurrencyInfo{
		Code:                 c.Code(),
		Num:                  c.Num(),
		Name:                 c.name,
		Exponent:             c.exponent,
		SubunitToUnit:        c.SubunitToUnit(),
		Symbol:               c.symbol,
		ThousandsSeparator:   c.thousands,
		DecimalMark:          c.mark,
		SmallestDenomination: c.cashUnit,
	}
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code := c.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the alphabetic code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Currency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency code   |
//	| %q         | "USD"   | Quoted code     |
//	| %y         | $       | Currency symbol |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	if verb == 'y' || verb == 'Y' {
		curr = c.Symbol()
	}

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}
	text := quote + curr + quote

	// Padding
	if w, ok := state.Width(); ok && w > utf8.RuneCountInString(text) {
		pad := strings.Repeat(" ", w-utf8.RuneCountInString(text))
		if state.Flag('-') {
			text += pad
		} else {
			text = pad + text
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C', 'y', 'Y':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(cash.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}
