// Package main builds a sample household and logs its income report.
package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/household/internal/family"
	"github.com/go-petr/household/internal/job"
	"github.com/go-petr/household/internal/person"
	"github.com/go-petr/household/pkg/configpkg"
	"github.com/go-petr/household/pkg/currencypkg"
	"github.com/go-petr/household/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)

	ted := person.New(45, person.WithFirstName("Ted"), person.WithLastName("Neward"))
	charlotte := person.New(45, person.WithFirstName("Charlotte"), person.WithLastName("Neward"))

	lecturer, err := job.NewHourly("Guest Lecturer", 10.75, job.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create job")
	}
	ted.SetJob(lecturer)

	engineer, err := job.NewSalary("Software Engineer", 120_000, job.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create job")
	}
	charlotte.SetJob(engineer)

	f := family.New(ted, charlotte)

	child := person.New(0, person.WithFirstName("Sam"), person.WithLastName("Neward"))
	if !f.HaveChild(child) {
		logger.Warn().Msg("child refused, no adult in the family")
	}

	if err := charlotte.Job().Convert(); err != nil {
		logger.Error().Err(err).Msg("cannot convert job")
	}

	for _, m := range f.Members() {
		logMember(logger, m)
	}

	logger.Info().
		Int(currencypkg.USD, f.HouseholdIncome()).
		Stringer(config.ReportCurrency, f.HouseholdIncomeIn(config.ReportCurrency)).
		Msg("household income")
}

func logMember(logger zerolog.Logger, p *person.Person) {
	logger.Debug().
		Str("person_id", p.ID().String()).
		Msg(p.String())
}
