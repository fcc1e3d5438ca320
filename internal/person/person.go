// Package person provides individuals with a job and a spouse.
package person

import (
	"fmt"
	"strconv"

	"github.com/go-petr/household/internal/job"
	"github.com/google/uuid"
)

const (
	// MaxMinorAge is the oldest age at which a job is refused.
	MaxMinorAge = 18
	// MaxUnmarriableAge is the oldest age at which a spouse is refused.
	MaxUnmarriableAge = 21
)

const none = "nil"

// Person holds identity and life state of an individual.
type Person struct {
	id        uuid.UUID
	firstName *string
	lastName  *string
	age       int
	job       *job.Job
	spouse    *Person // not owned; the spouse links back
}

// Option configures a Person.
type Option func(*Person)

// WithFirstName sets the first name.
func WithFirstName(name string) Option {
	return func(p *Person) {
		p.firstName = &name
	}
}

// WithLastName sets the last name.
func WithLastName(name string) Option {
	return func(p *Person) {
		p.lastName = &name
	}
}

// New returns a Person of the given age with no job and no spouse.
func New(age int, opts ...Option) *Person {
	p := &Person{
		id:  uuid.New(),
		age: age,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ID returns the identity of the person.
func (p *Person) ID() uuid.UUID {
	return p.id
}

// FirstName returns the first name and whether it is set.
func (p *Person) FirstName() (string, bool) {
	if p.firstName == nil {
		return "", false
	}
	return *p.firstName, true
}

// LastName returns the last name and whether it is set.
func (p *Person) LastName() (string, bool) {
	if p.lastName == nil {
		return "", false
	}
	return *p.lastName, true
}

// Age returns the age in years.
func (p *Person) Age() int {
	return p.age
}

// SetAge changes the age. The job and spouse already held are kept.
func (p *Person) SetAge(age int) {
	p.age = age
}

// Job returns the current job or nil.
func (p *Person) Job() *job.Job {
	return p.job
}

// SetJob assigns j and reports whether it was kept.
// A person aged MaxMinorAge or younger is left with no job at all.
func (p *Person) SetJob(j *job.Job) bool {
	p.job = j
	if p.age <= MaxMinorAge {
		p.job = nil
	}
	return p.job == j
}

// Spouse returns the current spouse or nil.
func (p *Person) Spouse() *Person {
	return p.spouse
}

// SetSpouse assigns s and reports whether it was kept.
// A person aged MaxUnmarriableAge or younger is left with no spouse at all.
// Only p's side of the link is set; passing nil clears it.
func (p *Person) SetSpouse(s *Person) bool {
	p.spouse = s
	if p.age <= MaxUnmarriableAge {
		p.spouse = nil
	}
	return p.spouse == s
}

// String describes the person, the income of one hour of work and the spouse's first name.
func (p *Person) String() string {
	first, last := none, none
	if name, ok := p.FirstName(); ok {
		first = name
	}
	if name, ok := p.LastName(); ok {
		last = name
	}

	income := none
	if p.job != nil {
		income = strconv.Itoa(p.job.CalculateIncome(1))
	}

	spouse := none
	if p.spouse != nil {
		if name, ok := p.spouse.FirstName(); ok {
			spouse = name
		}
	}

	return fmt.Sprintf("[Person: firstName:%s lastName:%s age:%d job:%s spouse:%s]", first, last, p.age, income, spouse)
}
