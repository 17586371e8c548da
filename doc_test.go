package cash_test

import (
	"context"
	"fmt"

	"github.com/govalues/cash"
	"github.com/govalues/decimal"
)

func TaxAmount(ctx context.Context, priceAfterTax cash.Money, taxRate decimal.Decimal) (cash.Money, cash.Money, error) {
	// Price
	one := taxRate.One()
	taxRate, err := taxRate.Add(one)
	if err != nil {
		return cash.Money{}, cash.Money{}, err
	}

	priceBeforeTax, err := priceAfterTax.Quo(ctx, taxRate)
	if err != nil {
		return cash.Money{}, cash.Money{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return cash.Money{}, cash.Money{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := cash.MustParseMoney("USD", "10")
	vatRate := decimal.MustParse("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(context.Background(), priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT %-6k         = %v\n", vatRate, vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)

	// Output:
	// Price (before tax) = USD 9.39
	// VAT 6.5%           = USD 0.61
	// Price (after tax)  = USD 10.00
}

// In this example, a restaurant bill is split between guests so that
// the parts add up to the bill exactly.
func Example_billSplitting() {
	bill := cash.MustParseMoney("EUR", "100")
	tip, err := bill.Mul(context.Background(), decimal.MustParse("0.15"))
	if err != nil {
		panic(err)
	}
	total, err := bill.Add(tip)
	if err != nil {
		panic(err)
	}

	parts, err := total.Split(3)
	if err != nil {
		panic(err)
	}
	for i, p := range parts {
		fmt.Printf("Guest %v pays %v\n", i+1, p)
	}

	// Output:
	// Guest 1 pays EUR 38.34
	// Guest 2 pays EUR 38.33
	// Guest 3 pays EUR 38.33
}

func ExampleMoney_Allocate() {
	m := cash.MustParseMoney("USD", "0.05")
	parts, err := m.Allocate(decimal.MustParse("3"), decimal.MustParse("7"))
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output: [USD 0.02 USD 0.03]
}

func ExampleMoney_Split() {
	m := cash.MustParseMoney("USD", "1")
	parts, err := m.Split(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output: [USD 0.34 USD 0.33 USD 0.33]
}

func ExampleMoney_ToNearestCashValue() {
	m := cash.MustParseMoney("CHF", "0.07")
	c, err := m.ToNearestCashValue(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: CHF 0.05
}

func ExampleRoundingScope() {
	m := cash.MustParseMoney("USD", "0.05")
	half := decimal.MustParse("0.5")

	up, err := cash.RoundingScope(context.Background(), cash.HalfUp, func(ctx context.Context) (cash.Money, error) {
		return m.Mul(ctx, half)
	})
	if err != nil {
		panic(err)
	}
	even, err := m.Mul(context.Background(), half)
	if err != nil {
		panic(err)
	}
	fmt.Println(up, even)
	// Output: USD 0.03 USD 0.02
}

func ExampleParseMoney() {
	m, err := cash.ParseMoney("USD", "12.34")
	fmt.Println(m, err)
	_, err = cash.ParseMoney("USD", "12.345")
	fmt.Println(err)
	// Output:
	// USD 12.34 <nil>
	// parsing amount "12.345": amount has digits beyond the minor unit
}

func ExampleNewMoneyFromMajor() {
	ctx := context.Background()
	major := decimal.MustParse("1.005")

	exact, err := cash.NewMoneyFromMajor(ctx, cash.USD, major, cash.Exact)
	if err != nil {
		panic(err)
	}
	inf, err := cash.NewMoneyFromMajor(ctx, cash.USD, major, cash.Infinite)
	if err != nil {
		panic(err)
	}
	fmt.Println(exact, inf)
	// Output: USD 1.00 USD 1.005
}

func ExampleMoney_Format() {
	m := cash.MustParseMoney("USD", "-123.45")
	fmt.Printf("%v\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("%c\n", m)
	fmt.Printf("%y\n", m)
	// Output:
	// USD -123.45
	// -123.45
	// -12345
	// USD
	// -$123.45
}

func ExampleMoney_Display() {
	fmt.Println(cash.MustParseMoney("EUR", "1234567.89").Display())
	fmt.Println(cash.MustParseMoney("JPY", "1000").Display())
	// Output:
	// €1.234.567,89
	// ¥1,000
}

func ExampleExchangeRate_Conv() {
	r := cash.MustParseExchRate("USD", "JPY", "151.5")
	m := cash.MustParseMoney("USD", "1")

	even, err := r.Conv(context.Background(), m, nil)
	if err != nil {
		panic(err)
	}
	floor, err := r.Conv(context.Background(), m, cash.RoundWith(cash.Floor))
	if err != nil {
		panic(err)
	}
	fmt.Println(even, floor)
	// Output: JPY 152 JPY 151
}
