package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStages_ContractFillsAll(t *testing.T) {
	job := &Job{ContractEmail: true}
	job.NormalizeStages()

	assert.True(t, job.Applied)
	assert.True(t, job.Emailed)
	assert.True(t, job.CvResponded)
	assert.True(t, job.InterviewEmail)
	assert.True(t, job.ContractEmail)
}

func TestNormalizeStages_InterviewFillsEarlierOnly(t *testing.T) {
	job := &Job{InterviewEmail: true}
	job.NormalizeStages()

	assert.True(t, job.Applied)
	assert.True(t, job.Emailed)
	assert.True(t, job.CvResponded)
	assert.True(t, job.InterviewEmail)
	assert.False(t, job.ContractEmail)
}

func TestNormalizeStages_EmailedFillsApplied(t *testing.T) {
	job := &Job{Emailed: true}
	job.NormalizeStages()

	assert.True(t, job.Applied)
	assert.True(t, job.Emailed)
	assert.False(t, job.CvResponded)
}

func TestNormalizeStages_NothingSetStaysEmpty(t *testing.T) {
	job := &Job{}
	job.NormalizeStages()

	assert.False(t, job.Applied)
	assert.False(t, job.Emailed)
	assert.False(t, job.CvResponded)
	assert.False(t, job.InterviewEmail)
	assert.False(t, job.ContractEmail)
}

func TestNormalizeStages_RejectedUntouched(t *testing.T) {
	job := &Job{ContractEmail: true, Rejected: true}
	job.NormalizeStages()

	assert.True(t, job.Rejected)
	assert.True(t, job.Applied)
}
