// Package bank provides implementations of the [cash.Bank] contract that keep
// exchange rates in memory.
package bank
