package person

import (
	"testing"

	"github.com/go-petr/household/internal/job"
	"github.com/go-petr/household/pkg/randompkg"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	first, last := randompkg.Name(), randompkg.Name()
	age := randompkg.Adult()

	p := New(age, WithFirstName(first), WithLastName(last))

	got, ok := p.FirstName()
	require.True(t, ok)
	require.Equal(t, first, got)

	got, ok = p.LastName()
	require.True(t, ok)
	require.Equal(t, last, got)

	require.Equal(t, age, p.Age())
	require.NotEmpty(t, p.ID())
	require.Nil(t, p.Job())
	require.Nil(t, p.Spouse())

	anonymous := New(age)
	_, ok = anonymous.FirstName()
	require.False(t, ok)
	_, ok = anonymous.LastName()
	require.False(t, ok)
	require.NotEqual(t, p.ID(), anonymous.ID())
}

func TestSetJob(t *testing.T) {
	testCases := []struct {
		name string
		age  int
		kept bool
	}{
		{"Child", 5, false},
		{"Random minor", randompkg.Minor(), false},
		{"Exactly eighteen", 18, false},
		{"Nineteen", 19, true},
		{"Random adult", randompkg.Adult(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.age)
			j := salaryJob(t, "Engineer", 1000)

			require.Equal(t, tc.kept, p.SetJob(j))
			if tc.kept {
				require.Same(t, j, p.Job())
			} else {
				require.Nil(t, p.Job())
			}
		})
	}
}

func TestSetJobMinorDropsPreviousJob(t *testing.T) {
	p := New(30)
	require.True(t, p.SetJob(salaryJob(t, "Engineer", 1000)))

	p.SetAge(16)
	require.NotNil(t, p.Job())

	require.False(t, p.SetJob(hourlyJob(t, "Paperboy", 5)))
	require.Nil(t, p.Job())
}

func TestSetSpouse(t *testing.T) {
	testCases := []struct {
		name string
		age  int
		kept bool
	}{
		{"Minor", randompkg.Minor(), false},
		{"Twenty", 20, false},
		{"Exactly twenty one", 21, false},
		{"Twenty two", 22, true},
		{"Random adult", randompkg.Adult(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(tc.age)
			s := New(randompkg.Adult())

			require.Equal(t, tc.kept, p.SetSpouse(s))
			if tc.kept {
				require.Same(t, s, p.Spouse())
			} else {
				require.Nil(t, p.Spouse())
			}
			require.Nil(t, s.Spouse())
		})
	}
}

func TestSetSpouseNilBreaksLink(t *testing.T) {
	p1, p2 := New(30), New(31)
	require.True(t, p1.SetSpouse(p2))
	require.True(t, p2.SetSpouse(p1))

	require.True(t, p1.SetSpouse(nil))
	require.Nil(t, p1.Spouse())
	require.Same(t, p1, p2.Spouse())
}

func TestString(t *testing.T) {
	ted := New(45, WithFirstName("Ted"), WithLastName("Neward"))
	require.Equal(t, "[Person: firstName:Ted lastName:Neward age:45 job:nil spouse:nil]", ted.String())

	charlotte := New(45, WithFirstName("Charlotte"), WithLastName("Neward"))
	require.True(t, ted.SetSpouse(charlotte))
	require.True(t, ted.SetJob(hourlyJob(t, "Guest Lecturer", 10.75)))
	require.Equal(t, "[Person: firstName:Ted lastName:Neward age:45 job:10 spouse:Charlotte]", ted.String())

	salaried := New(30, WithFirstName("Ann"))
	require.True(t, salaried.SetJob(salaryJob(t, "Engineer", 1000)))
	require.True(t, salaried.SetSpouse(New(30)))
	require.Equal(t, "[Person: firstName:Ann lastName:nil age:30 job:1000 spouse:nil]", salaried.String())

	require.Equal(t, salaried.String(), salaried.String())
}

func hourlyJob(t *testing.T, title string, wage float64) *job.Job {
	t.Helper()

	j, err := job.NewHourly(title, wage)
	require.NoError(t, err)

	return j
}

func salaryJob(t *testing.T, title string, annual uint64) *job.Job {
	t.Helper()

	j, err := job.NewSalary(title, annual)
	require.NoError(t, err)

	return j
}
