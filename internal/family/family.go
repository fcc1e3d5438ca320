// Package family provides households of related people and their income.
package family

import (
	"github.com/go-petr/household/internal/job"
	"github.com/go-petr/household/internal/money"
	"github.com/go-petr/household/internal/person"
	"github.com/go-petr/household/pkg/currencypkg"
)

// AdultAge is the age from which a member can take in a child.
const AdultAge = 21

// Family holds its members in the order they joined.
type Family struct {
	members []*person.Person
}

// New marries spouse1 and spouse2 and returns their family.
// The marriage link is dropped on the side of a spouse who is too young.
func New(spouse1, spouse2 *person.Person) *Family {
	spouse1.SetSpouse(spouse2)
	spouse2.SetSpouse(spouse1)

	return &Family{
		members: []*person.Person{spouse1, spouse2},
	}
}

// Members returns the members in join order.
func (f *Family) Members() []*person.Person {
	members := make([]*person.Person, len(f.members))
	copy(members, f.members)
	return members
}

// HaveChild adds child to the family when at least one member is an adult.
func (f *Family) HaveChild(child *person.Person) bool {
	for _, m := range f.members {
		if m.Age() >= AdultAge {
			f.members = append(f.members, child)
			return true
		}
	}
	return false
}

// HouseholdIncome returns the yearly income of all working members.
func (f *Family) HouseholdIncome() int {
	var sum int
	for _, m := range f.members {
		if j := m.Job(); j != nil {
			sum += j.CalculateIncome(job.HoursPerYear)
		}
	}
	return sum
}

// HouseholdIncomeIn returns HouseholdIncome, counted in USD, converted into currency.
func (f *Family) HouseholdIncomeIn(currency string) money.Money {
	return money.New(f.HouseholdIncome(), currencypkg.USD).Convert(currency)
}
