package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dataproc/internal/services"
)

func TestParseUseCases(t *testing.T) {
	assert.Nil(t, parseUseCases(""))
	assert.Equal(t,
		[]services.UseCase{services.UseCaseWordFrequency, services.UseCasePenguinCensus},
		parseUseCases(" word_frequency, ,penguin_census"))
}
