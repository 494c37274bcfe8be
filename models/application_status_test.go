package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusTransitions(t *testing.T) {
	assert.True(t, ApplicationStatusApplied.CanMoveTo(ApplicationStatusScreening))
	assert.True(t, ApplicationStatusScreening.CanMoveTo(ApplicationStatusInterview))
	assert.True(t, ApplicationStatusInterview.CanMoveTo(ApplicationStatusPreHireChecks))
	assert.True(t, ApplicationStatusPreHireChecks.CanMoveTo(ApplicationStatusHired))

	// пропуск этапов запрещен
	assert.False(t, ApplicationStatusApplied.CanMoveTo(ApplicationStatusInterview))
	assert.False(t, ApplicationStatusApplied.CanMoveTo(ApplicationStatusHired))
	assert.False(t, ApplicationStatusScreening.CanMoveTo(ApplicationStatusHired))
}

func TestApplicationStatusBackEdge(t *testing.T) {
	// единственный возврат назад - с проверки перед наймом на скрининг
	assert.True(t, ApplicationStatusPreHireChecks.CanMoveTo(ApplicationStatusScreening))
	assert.False(t, ApplicationStatusScreening.CanMoveTo(ApplicationStatusApplied))
	assert.False(t, ApplicationStatusInterview.CanMoveTo(ApplicationStatusScreening))
	assert.False(t, ApplicationStatusHired.CanMoveTo(ApplicationStatusPreHireChecks))
}

func TestApplicationStatusWithdrawEdge(t *testing.T) {
	// рекрутер переводит в "Отозван" только с начального этапа,
	// отзыв соискателем с поздних этапов идет своим маршрутом (lib/application)
	assert.True(t, ApplicationStatusApplied.CanMoveTo(ApplicationStatusWithdrawn))
	assert.False(t, ApplicationStatusScreening.CanMoveTo(ApplicationStatusWithdrawn))
	assert.False(t, ApplicationStatusInterview.CanMoveTo(ApplicationStatusWithdrawn))
	assert.False(t, ApplicationStatusPreHireChecks.CanMoveTo(ApplicationStatusWithdrawn))
}

func TestApplicationStatusTerminal(t *testing.T) {
	for _, status := range ApplicationStageOrder {
		if status == ApplicationStatusRejected || status == ApplicationStatusWithdrawn {
			assert.True(t, status.IsTerminal(), string(status))
			continue
		}
		assert.False(t, status.IsTerminal(), string(status))
	}

	// из терминальных этапов переводов нет
	for _, target := range ApplicationStageOrder {
		assert.False(t, ApplicationStatusRejected.CanMoveTo(target), string(target))
		assert.False(t, ApplicationStatusWithdrawn.CanMoveTo(target), string(target))
	}
}

func TestApplicationStatusIsValid(t *testing.T) {
	for _, status := range ApplicationStageOrder {
		assert.True(t, status.IsValid(), string(status))
	}
	assert.False(t, ApplicationStatus("offer").IsValid())
	assert.False(t, ApplicationStatus("").IsValid())
}

func TestApplicationStatusToHuman(t *testing.T) {
	assert.Equal(t, "Скрининг", ApplicationStatusScreening.ToHuman())
	assert.Equal(t, "unknown", ApplicationStatus("unknown").ToHuman())
}
