// Package randompkg provides functionality for generating random fixtures.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"github.com/go-petr/household/pkg/currencypkg"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int) int {
	return min + int(Intn(max-min+1))
}

// FloatBetween generates a random decimal number between min and max rounded to 2 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*100) / 100
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Name generates a random capitalized name.
func Name() string {
	s := String(6)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Adult generates a random age old enough to work and marry.
func Adult() int {
	return IntBetween(22, 90)
}

// Minor generates a random age too young to hold a job.
func Minor() int {
	return IntBetween(0, 18)
}

// Wage generates a random hourly wage.
func Wage() float64 {
	return FloatBetween(8, 100)
}

// Salary generates a random annual salary.
func Salary() uint64 {
	return uint64(IntBetween(20_000, 250_000))
}

// Currency generates a random supported currency code.
func Currency() string {
	return currencypkg.SupportedCurrencies[Intn(len(currencypkg.SupportedCurrencies))]
}
