// Package job provides employment records and income calculation.
package job

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrNegativeSalary indicates that an operation would leave a salary below zero.
	ErrNegativeSalary = errors.New("negative salary")
	// ErrSalaryOverflow indicates that an operation would leave a salary above MaxSalary.
	ErrSalaryOverflow = errors.New("salary overflow")
	// ErrInvalidAmount indicates a wage or raise that is not a finite number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNoCompensation indicates a job created without compensation.
	ErrNoCompensation = errors.New("no compensation")
)

// Job holds a title and the way it is paid.
//
// Job is shared by reference: a change made through one holder is seen by all.
type Job struct {
	title        string
	compensation Compensation
	logger       zerolog.Logger
}

// Option configures a Job.
type Option func(*Job)

// WithLogger sets the logger used for notices.
func WithLogger(l zerolog.Logger) Option {
	return func(j *Job) {
		j.logger = l
	}
}

// New returns a Job with the given title and compensation.
func New(title string, c Compensation, opts ...Option) (*Job, error) {
	if c == nil {
		return nil, ErrNoCompensation
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	j := &Job{
		title:        title,
		compensation: c,
		logger:       log.Logger,
	}

	for _, opt := range opts {
		opt(j)
	}

	return j, nil
}

// NewHourly returns a Job paid the given wage per hour.
func NewHourly(title string, wage float64, opts ...Option) (*Job, error) {
	return New(title, Hourly{Wage: wage}, opts...)
}

// NewSalary returns a Job paid the given amount per year.
// Salaries above MaxSalary are rejected with ErrSalaryOverflow.
func NewSalary(title string, annual uint64, opts ...Option) (*Job, error) {
	return New(title, Salary{Annual: annual}, opts...)
}

// Title returns the job title.
func (j *Job) Title() string {
	return j.title
}

// Compensation returns the current compensation.
func (j *Job) Compensation() Compensation {
	return j.compensation
}

// CalculateIncome returns the income for the given number of hours, truncated.
// Salaried jobs ignore periods and return the annual salary.
func (j *Job) CalculateIncome(periods int) int {
	return j.compensation.income(periods)
}

// RaiseBy adds amount to the wage or salary.
func (j *Job) RaiseBy(amount int) error {
	return j.RaiseByFloat(float64(amount))
}

// RaiseByFloat adds amount to the wage, or its whole part to the salary.
func (j *Job) RaiseByFloat(amount float64) error {
	if err := checkFinite(amount); err != nil {
		return err
	}

	c, err := j.compensation.raiseBy(amount)
	if err != nil {
		return err
	}

	j.compensation = c
	return nil
}

// RaiseByPercent scales the wage or salary by 1+percent, so 0.1 is a ten percent raise.
func (j *Job) RaiseByPercent(percent float64) error {
	if err := checkFinite(percent); err != nil {
		return err
	}

	c, err := j.compensation.raiseByPercent(percent)
	if err != nil {
		return err
	}

	j.compensation = c
	return nil
}

// Convert turns an hourly job into a salaried one, paying a year of hours
// rounded down to the nearest thousand. A salaried job is left as is.
func (j *Job) Convert() error {
	s, changed, err := j.compensation.toSalary()
	if err != nil {
		return err
	}

	if !changed {
		j.logger.Info().Str("title", j.title).Msg("already a salaried position")
		return nil
	}

	j.compensation = s
	return nil
}
