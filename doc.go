/*
Package cash implements exact monetary values in various currencies.
It leverages the [decimal] package's capabilities for handling decimal numbers
without floating-point drift and combines them with a [Currency] struct and
a [Registry] of currency metadata.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Registry of ISO 4217 currencies that can be extended at runtime
  - Arithmetic and comparison operations that never mix currencies
  - Exact and infinite precision, chosen when an amount is constructed
  - Eight rounding modes with a process-wide default and scoped overrides
  - Cash rounding to the smallest coin or note of a currency
  - Allocation of amounts by weights without losing or gaining a minor unit
  - Exchange between currencies through a pluggable [Bank]

# Representation

A [Money] value holds a [Currency] and a number of minor units of that
currency (cents, pennies, fens) stored as a [decimal.Decimal].
Amounts with [Exact] precision always hold a whole number of minor units;
amounts with [Infinite] precision keep fractions until they are rounded.
Two amounts are equal if they have the same currency and the same value,
regardless of how they were computed, see [Money.Equal] and [Money.Hash].

A [Currency] is an immutable value carrying the metadata of the currency:
its code, the ratio between minor and major units, display symbols and the
smallest cash denomination.
Currencies are looked up by code in a [Registry].
The default registry is seeded with the built-in table, such as [USD] and [EUR].

# Rounding

Operations that may produce fractional minor units consult the rounding
mode active in their [context.Context].
Use [WithRoundingMode] or [RoundingScope] to change the mode for a block of
code; the change is visible only through the returned context, so it is
undone on every exit path and never leaks into other goroutines.
Without a scope, the mode of the default [Config] is used, see [SetDefault].

# Exchange

The package defines the [Bank] contract and the [Convert] helper, but does not
store exchange rates.
Package cash/bank provides an in-memory rate table, and package
cash/bank/feed provides a bank backed by an HTTP rate feed.

# Errors

Errors may occur during the parsing of amounts and currencies, as well as
during arithmetic operations when certain conditions are not met
(e.g., currency mismatch, division by zero, coefficient overflow).
Errors are wrapped with details about the failed operation; use [errors.Is]
with the exported error values, such as [ErrCurrencyMismatch], to inspect them.
*/
package cash
