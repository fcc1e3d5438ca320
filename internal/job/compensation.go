package job

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// HoursPerYear is the number of paid hours in a working year.
	HoursPerYear = 2000
	// salaryStep is the granularity an hourly wage is rounded down to on conversion.
	salaryStep = 1000
)

// MaxSalary is the largest annual salary, the largest income an int64 can report.
const MaxSalary uint64 = math.MaxInt64

// Compensation describes how a Job is paid. It is implemented by Hourly and Salary only.
//
// Every Job operation is a method here, so a new kind of compensation
// does not compile until it handles all of them.
type Compensation interface {
	validate() error
	income(periods int) int
	raiseBy(amount float64) (Compensation, error)
	raiseByPercent(percent float64) (Compensation, error)
	toSalary() (Salary, bool, error)
}

// Hourly is paid per hour worked.
type Hourly struct {
	Wage float64
}

// Salary is paid a fixed amount per year.
type Salary struct {
	Annual uint64
}

func (h Hourly) validate() error {
	return checkFinite(h.Wage)
}

func (h Hourly) income(periods int) int {
	return int(h.Wage * float64(periods))
}

func (h Hourly) raiseBy(amount float64) (Compensation, error) {
	return Hourly{Wage: h.Wage + amount}, nil
}

func (h Hourly) raiseByPercent(percent float64) (Compensation, error) {
	return Hourly{Wage: h.Wage * (1 + percent)}, nil
}

func (h Hourly) toSalary() (Salary, bool, error) {
	thousands := math.Trunc(h.Wage * HoursPerYear / salaryStep)

	s, err := salaryFromFloat(thousands * salaryStep)
	if err != nil {
		return Salary{}, false, err
	}

	return s, true, nil
}

func (s Salary) validate() error {
	if s.Annual > MaxSalary {
		return ErrSalaryOverflow
	}
	return nil
}

func (s Salary) income(int) int {
	return int(s.Annual)
}

// raiseBy adds the whole part of amount in integer arithmetic.
func (s Salary) raiseBy(amount float64) (Compensation, error) {
	raised := decimal.NewFromInt(int64(s.Annual)).Add(decimal.NewFromFloat(amount).Truncate(0))
	return salaryFromDecimal(raised)
}

func (s Salary) raiseByPercent(percent float64) (Compensation, error) {
	return salaryFromFloat(float64(s.Annual) * (1 + percent))
}

func (s Salary) toSalary() (Salary, bool, error) {
	return s, false, nil
}

func checkFinite(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrInvalidAmount
	}
	return nil
}

// salaryFromFloat truncates f and checks that it fits a Salary.
func salaryFromFloat(f float64) (Salary, error) {
	if err := checkFinite(f); err != nil {
		return Salary{}, err
	}

	f = math.Trunc(f)
	switch {
	case f < 0:
		return Salary{}, ErrNegativeSalary
	// float64(MaxSalary) rounds up to 2^63, which is out of range.
	case f >= float64(MaxSalary):
		return Salary{}, ErrSalaryOverflow
	}

	return Salary{Annual: uint64(f)}, nil
}

// salaryFromDecimal checks that the whole number d fits a Salary.
func salaryFromDecimal(d decimal.Decimal) (Salary, error) {
	if d.IsNegative() {
		return Salary{}, ErrNegativeSalary
	}

	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return Salary{}, ErrSalaryOverflow
	}

	return Salary{Annual: uint64(d.IntPart())}, nil
}
